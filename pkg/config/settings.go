package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default daemon settings
const (
	DefaultInterval    = 6 * time.Hour
	DefaultMetricsAddr = ":9321"
	DefaultDataDir     = "/var/lib/burrow"
	DefaultLogLevel    = "info"
)

// Settings holds daemon-level configuration, loaded from an optional YAML
// file. Every field has a default so the file may be omitted entirely.
type Settings struct {
	// Interval between reconciliation passes
	Interval time.Duration `yaml:"interval"`

	// MetricsAddr is the listen address for /metrics and /healthz
	MetricsAddr string `yaml:"metrics_addr"`

	// DataDir holds the BoltDB database
	DataDir string `yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// JSONLog selects JSON output over human-readable console output
	JSONLog bool `yaml:"json_log"`

	// Contact is the operator contact embedded in the client
	// identification header sent to the provider
	Contact string `yaml:"contact"`
}

// DefaultSettings returns settings with all defaults applied
func DefaultSettings() Settings {
	return Settings{
		Interval:    DefaultInterval,
		MetricsAddr: DefaultMetricsAddr,
		DataDir:     DefaultDataDir,
		LogLevel:    DefaultLogLevel,
	}
}

// LoadSettings reads daemon settings from a YAML file, filling defaults
// for any field left unset. A missing file yields pure defaults; an
// unparsable file is an error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if settings.Interval <= 0 {
		settings.Interval = DefaultInterval
	}
	if settings.MetricsAddr == "" {
		settings.MetricsAddr = DefaultMetricsAddr
	}
	if settings.DataDir == "" {
		settings.DataDir = DefaultDataDir
	}
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	return settings, nil
}
