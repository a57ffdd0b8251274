// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the root configuration of the server.
// Each section is read from environment variables under its own prefix.
type StructuredConfig struct {
	// App holds authentication and application-level settings.
	App App `envPrefix:"APP_" json:"app"`

	// Storage holds PostgreSQL and Redis connection settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_" json:"server"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_" json:"workers"`

	// JSONFilePath is an optional path to a JSON config file.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App configures token issuance, password hashing and application metadata.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// AccessTokenTTL is the lifetime of access tokens.
	AccessTokenTTL Duration `env:"ACCESS_TOKEN_TTL" json:"access_token_ttl"`

	// RefreshTokenTTL is the lifetime of refresh tokens issued without "remembers".
	RefreshTokenTTL Duration `env:"REFRESH_TOKEN_TTL" json:"refresh_token_ttl"`

	// RememberedRefreshTokenTTL is the lifetime of refresh tokens issued with "remembers".
	RememberedRefreshTokenTTL Duration `env:"REMEMBERED_REFRESH_TOKEN_TTL" json:"remembered_refresh_token_ttl"`

	// BcryptCost is the bcrypt work factor.
	BcryptCost int `env:"BCRYPT_COST" json:"bcrypt_cost"`

	// HashConcurrency caps the number of bcrypt operations running at once.
	HashConcurrency int `env:"HASH_CONCURRENCY" json:"hash_concurrency"`

	// DefaultUserPassword is assigned to admin-created users that have no password.
	DefaultUserPassword string `env:"DEFAULT_USER_PASSWORD" json:"default_user_password"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// Version is reported by GET /version.
	Version string `env:"VERSION" json:"version"`
}

type Storage struct {
	DB DB `envPrefix:"DB_" json:"db"`

	Redis Redis `envPrefix:"REDIS_" json:"redis"`
}

type DB struct {
	DSN string `env:"DATABASE_URI" json:"dsn"`

	MaxOpenConns int `env:"MAX_OPEN_CONNS" json:"max_open_conns"`

	MaxIdleConns int `env:"MAX_IDLE_CONNS" json:"max_idle_conns"`
}

// Redis configures the optional user lookup cache. An empty Address disables it.
type Redis struct {
	Address string `env:"ADDRESS" json:"address"`

	Password string `env:"PASSWORD" json:"password"`

	DB int `env:"DB" json:"db"`

	TTL Duration `env:"TTL" json:"ttl"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS" json:"http_address"`

	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	ShutdownTimeout Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

type Workers struct {
	// StatusCleanupInterval is how often expired profile statuses are removed.
	StatusCleanupInterval Duration `env:"STATUS_CLEANUP_INTERVAL" json:"status_cleanup_interval"`
}

// GetStructuredConfig assembles the server configuration from a .env file,
// environment variables, command-line flags, an optional JSON file and
// built-in defaults, in that order of precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(nil).
		withJSON().
		withDefaults().
		build()
}
