package config

import (
	"encoding/json"
	"os"

	"github.com/raghul07102002/holofolio/internal/flagx"
	"github.com/raghul07102002/holofolio/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the scan duration either as a string
// like "3s" or as integer nanoseconds.
type jsonConfig struct {
	DatabaseDSN  string         `json:"database_dsn"`
	AdminSecret  string         `json:"admin_secret"`
	ListenAddr   string         `json:"listen_addr"`
	ScanDuration timex.Duration `json:"scan_duration"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flags. Absent file means no overlay; fields missing from the JSON
// keep their current values. Read or unmarshal errors panic, matching the
// fail-fast startup of the rest of the loader.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.AdminSecret != "" {
		cfg.AdminSecret = jc.AdminSecret
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.ScanDuration.Duration != 0 {
		cfg.ScanDuration = jc.ScanDuration.Duration
	}
}
