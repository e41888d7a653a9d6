package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables:
//
//	BLOG_HTTP_ADDR      bind address (e.g. ":8080")
//	BLOG_DATABASE_DSN   sqlite DSN
//	BLOG_JWT_SECRET     token signing secret
//	BLOG_TOKEN_TTL      token lifetime (Go duration, e.g. "24h")
//	BLOG_BCRYPT_COST    bcrypt work factor
//	BLOG_ALLOW_ORIGINS  CORS allow list
//	BLOG_ISSUER         token issuer claim
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("BLOG_HTTP_ADDR"); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := os.LookupEnv("BLOG_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("BLOG_JWT_SECRET"); ok {
		cfg.JWTSecret = v
	}
	if v, ok := os.LookupEnv("BLOG_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
	if v, ok := os.LookupEnv("BLOG_BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("BLOG_ALLOW_ORIGINS"); ok {
		cfg.AllowOrigins = v
	}
	if v, ok := os.LookupEnv("BLOG_ISSUER"); ok {
		cfg.Issuer = v
	}
}
