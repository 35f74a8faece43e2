package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file.
	ConfigFileName = ".nexus.yaml"
	// GlobalConfigDir holds the per-user config, relative to $HOME.
	GlobalConfigDir = ".config/nexus"
	// GlobalConfigFile is the file name inside GlobalConfigDir.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. NEXUS_SERVE_ADDR.
	EnvPrefix = "NEXUS"
)

// Load reads the config file at path. Keys the file leaves out keep their
// defaults, and NEXUS_* environment variables win over both.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'nexus init' to create one, or pass a different --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't parse config file: "+path,
			"Make sure it is valid YAML")
	}
	return decode(v, path)
}

// Find returns the config file to use: the explicit path if given,
// otherwise the first of the search paths that exists. An empty result
// means no file was found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		_, err := os.Stat(explicit)
		switch {
		case err == nil:
			return explicit, nil
		case os.IsNotExist(err):
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the --config path")
		default:
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
	}

	paths, err := searchPaths()
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// searchPaths lists the implicit config locations, most specific first.
func searchPaths() ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory", "")
	}
	paths := []string{filepath.Join(cwd, ConfigFileName)}
	if home, _ := os.UserHomeDir(); home != "" {
		paths = append(paths, filepath.Join(home, GlobalConfigDir, GlobalConfigFile))
	}
	return paths, nil
}

// LoadOrDefault loads the file Find picks, or the defaults (with
// environment overrides) when there is none. The result is validated
// either way and the path is returned for messages.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	var cfg *Config
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = decode(newViper(), "environment")
	}
	if err != nil {
		return nil, path, err
	}

	if err := Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newViper returns a viper instance seeded with every key's default so
// that environment lookups and partial files both resolve.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaultValues(DefaultConfig()) {
		v.SetDefault(key, value)
	}
	return v
}

func defaultValues(cfg *Config) map[string]any {
	return map[string]any{
		"version":              cfg.Version,
		"interval":             cfg.Interval.String(),
		"alert_duration":       cfg.AlertDuration.String(),
		"seed":                 cfg.Seed,
		"log.level":            cfg.Log.Level,
		"log.file":             cfg.Log.File,
		"serve.addr":           cfg.Serve.Addr,
		"dashboard.time_range": cfg.Dashboard.TimeRange,
		"dashboard.color":      cfg.Dashboard.Color,
	}
}

// decode unmarshals v into a Config. Viper's default hooks turn "1s"
// strings into durations. source names the origin in error messages.
func decode(v *viper.Viper, source string) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format in "+source,
			"Check value types, e.g. interval: 500ms")
	}
	return cfg, nil
}
