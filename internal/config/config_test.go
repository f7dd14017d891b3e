package config_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inkwell/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INKWELL_DATA_DIR", "/tmp/inkwell-data")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, filepath.Join("/tmp/inkwell-data", "inkwell.db"), cfg.DBPath)
	require.Equal(t, 5, cfg.MaxPriorities)
	require.Equal(t, time.Minute, cfg.TranslationInterval)
	require.Equal(t, 120*time.Second, cfg.WebhookTimeout)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INKWELL_ADDR", ":9090")
	t.Setenv("INKWELL_DB_PATH", "/var/lib/inkwell/app.db")
	t.Setenv("INKWELL_MAX_PRIORITIES", "3")
	t.Setenv("INKWELL_APP_URL", "https://app.example.com/")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "/var/lib/inkwell/app.db", cfg.DBPath)
	require.Equal(t, 3, cfg.MaxPriorities)
	require.Equal(t, "https://app.example.com", cfg.AppURL)
}

func TestLoad_InvalidPriorities(t *testing.T) {
	t.Setenv("INKWELL_MAX_PRIORITIES", "0")

	_, err := config.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MAX_PRIORITIES")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("INKWELL_LOG_FORMAT", "xml")

	_, err := config.Load()
	require.ErrorContains(t, err, "LOG_FORMAT")
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("INKWELL_TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.7")

	cfg, err := config.Load()
	require.NoError(t, err)
	nets, err := config.ParseCIDRs(cfg.TrustedProxies)
	require.NoError(t, err)
	require.Len(t, nets, 2)
	require.True(t, nets[0].Contains(net.ParseIP("10.2.3.4")))
	require.True(t, nets[1].Contains(net.ParseIP("192.168.1.7")))
	require.False(t, nets[1].Contains(net.ParseIP("192.168.1.8")))

	t.Setenv("INKWELL_TRUSTED_PROXIES", "not-an-ip")
	_, err = config.Load()
	require.ErrorContains(t, err, "TRUSTED_PROXIES")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("INKWELL_TEST_ENV_VALUE=hello\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("INKWELL_TEST_ENV_VALUE") })

	require.NoError(t, config.LoadEnvFile(path))
	require.Equal(t, "hello", os.Getenv("INKWELL_TEST_ENV_VALUE"))
}

func TestLoadEnvFile_MissingIsIgnored(t *testing.T) {
	require.NoError(t, config.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
