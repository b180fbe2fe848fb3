// Package config loads runtime settings for the portfolio front-ends.
// Sources are layered: defaults, then a JSON file, then environment
// variables, then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings shared by the CLI and web front-ends.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite storage file.
//   - AdminSecret: the static shared secret gating content edits. This is a
//     content-gating convenience, not a security boundary.
//   - ListenAddr: listen address of the web front-end.
//   - ScanDuration: how long the landing "scanning" effect runs before the
//     menu activates.
type Config struct {
	DatabaseDSN  string
	AdminSecret  string
	ListenAddr   string
	ScanDuration time.Duration
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "portfolio.db"
	c.AdminSecret = "Trytocrack@9015"
	c.ListenAddr = ":8080"
	c.ScanDuration = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
