// Package config handles runtime configuration for the blog server,
// applying defaults, then environment variables, then command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the blog server.
type Config struct {
	// HTTPAddr is the bind address for the public HTTP endpoint.
	HTTPAddr string
	// DatabaseDSN is the sqlite DSN.
	DatabaseDSN string
	// JWTSecret is the HMAC secret for signing tokens (HS256). The
	// development default must be overridden in production.
	JWTSecret string
	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration
	// BcryptCost is the adaptive hashing work factor.
	BcryptCost int
	// AllowOrigins is the comma separated CORS allow list.
	AllowOrigins string
	// Issuer is the `iss` claim stamped on issued tokens.
	Issuer string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDSN = "file:blog.db?cache=shared&_fk=1"
	c.JWTSecret = "dev-only-signing-secret"
	c.TokenTTL = 24 * time.Hour
	c.BcryptCost = 12
	c.AllowOrigins = "http://localhost:3000"
	c.Issuer = "blog-application"
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from the environment and finally from command-line flags.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
