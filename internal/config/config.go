// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings for the HTTP server and upload handling.
type Config struct {
	Addr          string // listen address for serve
	BodyLimitMB   int    // max upload size in MiB
	UploadTempDir string // where uploaded PDFs are spooled; "" = os default
}

const (
	defaultAddr        = ":8080"
	defaultBodyLimitMB = 32
)

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          envOr("STATEMENT_ADDR", defaultAddr),
		BodyLimitMB:   defaultBodyLimitMB,
		UploadTempDir: os.Getenv("STATEMENT_TMP_DIR"),
	}
	if v := os.Getenv("STATEMENT_BODY_LIMIT_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BodyLimitMB = n
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
