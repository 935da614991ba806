package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// withFakeHome points config loading at a temp home for one test.
func withFakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	original := osUserHomeDir
	osUserHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { osUserHomeDir = original })
	return home
}

func writeUserConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, userConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Host)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Refresh.Containers.Std())
	assert.Equal(t, 15*time.Second, cfg.Refresh.Images.Std())
	assert.Equal(t, 20*time.Second, cfg.Refresh.Networks.Std())
	assert.Equal(t, 30*time.Second, cfg.Refresh.Volumes.Std())
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	withFakeHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysUserFile(t *testing.T) {
	home := withFakeHome(t)
	writeUserConfig(t, home, `
host: tcp://build-host:2375
logLevel: debug
refresh:
  containers: 2s
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tcp://build-host:2375", cfg.Host)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Refresh.Containers.Std())

	// Untouched fields keep their defaults.
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, 15*time.Second, cfg.Refresh.Images.Std())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := withFakeHome(t)
	writeUserConfig(t, home, "refresh: [not a mapping")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	home := withFakeHome(t)
	writeUserConfig(t, home, "refresh:\n  containers: fast\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestDurationUnmarshal(t *testing.T) {
	var h struct {
		D Duration `yaml:"d"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("d: 90s"), &h))
	assert.Equal(t, 90*time.Second, h.D.Std())
}
