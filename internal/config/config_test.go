package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "portfolio.db", cfg.DatabaseDSN)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 3*time.Second, cfg.ScanDuration)
	assert.NotEmpty(t, cfg.AdminSecret)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	resetArgs(t)
	t.Setenv("DATABASE_DSN", "env.db")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("PORT", "9090")
	t.Setenv("SCAN_DURATION", "1s")

	cfg := LoadConfig()

	assert.Equal(t, "env.db", cfg.DatabaseDSN)
	assert.Equal(t, "hunter2", cfg.AdminSecret)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, time.Second, cfg.ScanDuration)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_dsn": "json.db",
		"listen_addr": ":7070",
		"scan_duration": "2s"
	}`), 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "json.db", cfg.DatabaseDSN)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, 2*time.Second, cfg.ScanDuration)
	// untouched by the JSON file
	assert.NotEmpty(t, cfg.AdminSecret)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen_addr": ":7070"}`), 0o600))

	resetArgs(t, "-c", path, "-a", ":6060", "-d", "flag.db", "-t", "5")

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.ListenAddr)
	assert.Equal(t, "flag.db", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.ScanDuration)
}
