package config

import (
	"flag"
	"os"
	"time"

	"github.com/raghul07102002/holofolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address of the web front-end
//	-d string   SQLite storage file
//	-t int      landing scan duration in seconds
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, so the JSON config stage can own -c/-config.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "listen address of the web front-end")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite storage file")
	scanSeconds := fs.Int("t", int(cfg.ScanDuration.Seconds()), "landing scan duration (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ScanDuration = time.Duration(*scanSeconds) * time.Second
}
