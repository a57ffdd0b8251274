package config

import (
	"runtime"
	"time"
)

const (
	defaultHTTPAddress     = "localhost:3000"
	defaultTokenIssuer     = "go-rest-auth"
	defaultAccessTokenTTL  = 2 * time.Minute
	defaultRefreshTokenTTL = 24 * time.Hour
	defaultRememberedTTL   = 360 * 24 * time.Hour
	defaultBcryptCost      = 10
	defaultUserPassword    = "zolran666"
	defaultLogLevel        = "debug"
	defaultVersion         = "dev"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRedisTTL        = 30 * time.Second
	defaultStatusCleanup   = time.Minute
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
)

// defaults returns the lowest-priority config source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:               defaultTokenIssuer,
			AccessTokenTTL:            Duration(defaultAccessTokenTTL),
			RefreshTokenTTL:           Duration(defaultRefreshTokenTTL),
			RememberedRefreshTokenTTL: Duration(defaultRememberedTTL),
			BcryptCost:                defaultBcryptCost,
			HashConcurrency:           runtime.NumCPU(),
			DefaultUserPassword:       defaultUserPassword,
			LogLevel:                  defaultLogLevel,
			Version:                   defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
			Redis: Redis{
				TTL: Duration(defaultRedisTTL),
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  Duration(defaultRequestTimeout),
			ShutdownTimeout: Duration(defaultShutdownTimeout),
		},
		Workers: Workers{
			StatusCleanupInterval: Duration(defaultStatusCleanup),
		},
	}
}
