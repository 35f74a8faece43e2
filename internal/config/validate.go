package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but nexus only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest nexus release")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too fast", cfg.Interval),
			fmt.Sprintf("Use at least %s, e.g. 'interval: 1s'.", MinInterval))
	}

	if cfg.AlertDuration <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("alert_duration must be positive, got %s", cfg.AlertDuration),
			"Try 'alert_duration: 5s'.")
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Use one of: debug, info, warn, error.")
	}

	if strings.TrimSpace(cfg.Serve.Addr) == "" {
		return errors.New(errors.ErrConfig,
			"serve.addr is empty",
			"Set it to a listen address like ':8080'.")
	}

	if err := validateDashboard(cfg.Dashboard); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'dashboard' section in your .nexus.yaml.")
	}

	return nil
}

func validateDashboard(d DashboardConfig) error {
	if _, ok := sim.ParseTimeRange(d.TimeRange); !ok {
		return fmt.Errorf("unknown time_range %q (want 1H, 24H or 7D)", d.TimeRange)
	}

	switch d.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", d.Color)
	}
	return nil
}
