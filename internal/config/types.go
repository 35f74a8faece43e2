package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// MinInterval is the fastest tick period accepted.
const MinInterval = 100 * time.Millisecond

// Config represents the complete .nexus.yaml configuration file.
type Config struct {
	Version       int             `yaml:"version" mapstructure:"version"`
	Interval      time.Duration   `yaml:"interval" mapstructure:"interval"`
	AlertDuration time.Duration   `yaml:"alert_duration" mapstructure:"alert_duration"`
	Seed          int64           `yaml:"seed" mapstructure:"seed"`
	Log           LogConfig       `yaml:"log" mapstructure:"log"`
	Serve         ServeConfig     `yaml:"serve" mapstructure:"serve"`
	Dashboard     DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`

	// File receives JSON log lines while the dashboard owns the terminal.
	// Empty discards them.
	File string `yaml:"file" mapstructure:"file"`
}

// ServeConfig controls the web view.
type ServeConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// DashboardConfig controls the terminal dashboard.
type DashboardConfig struct {
	// TimeRange is the initially selected range: 1H, 24H or 7D.
	TimeRange string `yaml:"time_range" mapstructure:"time_range"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		Interval:      time.Second,
		AlertDuration: 5 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
		Dashboard: DashboardConfig{
			TimeRange: "1H",
			Color:     "auto",
		},
	}
}
