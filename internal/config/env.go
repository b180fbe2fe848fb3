package config

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded automatically via godotenv.
//
// Recognized variables:
//
//	DATABASE_DSN    SQLite storage file
//	ADMIN_PASSWORD  shared secret for content edits
//	PORT            web listen port (ListenAddr becomes ":"+PORT)
//	SCAN_DURATION   landing scan duration, e.g. "3s"
func parseEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.ListenAddr = ":" + v
	}
	if v := os.Getenv("SCAN_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ScanDuration = d
		}
	}
}
