package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads command-line flags from args (os.Args[1:] when nil) into a
// partial config. Flags carry no defaults so that lower-priority sources can
// still fill the gaps.
func parseFlags(args []string) (*StructuredConfig, error) {
	if args == nil {
		args = os.Args[1:]
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var (
		serverAddress   NetAddress
		accessTTL       Duration
		refreshTTL      Duration
		rememberedTTL   Duration
		requestTimeout  Duration
		cleanupInterval Duration
		cfg             StructuredConfig
	)

	fs.Var(&serverAddress, "a", "HTTP server address in a form host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis", "", "Redis address for the user cache")
	fs.StringVar(&cfg.App.TokenSignKey, "k", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "issuer", "", "JWT issuer")
	fs.Var(&accessTTL, "access-ttl", "access token lifetime (e.g. 2m)")
	fs.Var(&refreshTTL, "refresh-ttl", "refresh token lifetime (e.g. 1d)")
	fs.Var(&rememberedTTL, "remembered-refresh-ttl", "refresh token lifetime with remembers (e.g. 360d)")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "bcrypt work factor")
	fs.StringVar(&cfg.App.LogLevel, "l", "", "log level")
	fs.Var(&requestTimeout, "t", "request timeout")
	fs.Var(&cleanupInterval, "status-cleanup", "expired profile status cleanup interval")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.App.AccessTokenTTL = accessTTL
	cfg.App.RefreshTokenTTL = refreshTTL
	cfg.App.RememberedRefreshTokenTTL = rememberedTTL
	cfg.Workers.StatusCleanupInterval = cleanupInterval

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
