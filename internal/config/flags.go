package config

import (
	"flag"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-d string   sqlite DSN
//	-s string   JWT HMAC secret key
//	-t int      token lifetime, hours
//	-o string   CORS allow list
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "token signing secret")
	ttlHours := fs.Int("t", 0, "token lifetime (in hours)")
	fs.StringVar(&cfg.AllowOrigins, "o", cfg.AllowOrigins, "CORS allowed origins")

	if err := fs.Parse(args); err != nil {
		return
	}

	// -t overrides the TTL only when passed explicitly, so a sub-hour
	// value from BLOG_TOKEN_TTL survives flag parsing untouched
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenTTL = time.Duration(*ttlHours) * time.Hour
		}
	})
}
