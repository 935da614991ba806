// Package config provides configuration management for dockhand.
//
// Configuration is optional: dockhand works out of the box with built-in
// defaults, and users may override them through a single YAML file at
// ~/.config/dockhand/config.yaml:
//
//	host: tcp://remote-engine:2375
//	theme: default
//	logLevel: info
//	refresh:
//	  containers: 5s
//	  images: 15s
//	  networks: 20s
//	  volumes: 30s
//
// A host given on the command line always wins over the configured one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// For mocking in tests.
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/dockhand"
	configFileName = "config.yaml"
)

// Duration wraps time.Duration so YAML values like "5s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// RefreshConfig holds the background refresh cadence per resource view.
type RefreshConfig struct {
	Containers Duration `yaml:"containers"`
	Images     Duration `yaml:"images"`
	Networks   Duration `yaml:"networks"`
	Volumes    Duration `yaml:"volumes"`
}

// Config is the root configuration structure.
type Config struct {
	// Host is the engine address to connect to when no positional argument
	// is given (e.g. "unix:///var/run/docker.sock" or "tcp://host:2375").
	// Empty means the engine client's environment defaults.
	Host string `yaml:"host"`

	// Theme selects the color theme by name: default, blue, light,
	// dracula, or gruvbox.
	Theme string `yaml:"theme"`

	// LogLevel filters the diagnostic log ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel"`

	Refresh RefreshConfig `yaml:"refresh"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:    "default",
		LogLevel: "info",
		Refresh: RefreshConfig{
			Containers: Duration(5 * time.Second),
			Images:     Duration(15 * time.Second),
			Networks:   Duration(20 * time.Second),
			Volumes:    Duration(30 * time.Second),
		},
	}
}

// Load layers the user configuration file, when present, over the defaults.
// A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := userConfigPath()
	if err != nil {
		// User config is optional; without a home dir there is nothing to load.
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return merge(cfg, overlay), nil
}

func userConfigPath() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// merge overlays non-zero fields of overlay onto base.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.Host != "" {
		merged.Host = overlay.Host
	}
	if overlay.Theme != "" {
		merged.Theme = overlay.Theme
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Refresh.Containers > 0 {
		merged.Refresh.Containers = overlay.Refresh.Containers
	}
	if overlay.Refresh.Images > 0 {
		merged.Refresh.Images = overlay.Refresh.Images
	}
	if overlay.Refresh.Networks > 0 {
		merged.Refresh.Networks = overlay.Refresh.Networks
	}
	if overlay.Refresh.Volumes > 0 {
		merged.Refresh.Volumes = overlay.Refresh.Volumes
	}
	return merged
}
