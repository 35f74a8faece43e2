package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rileyhilliard/nexus/internal/config"
	"github.com/rileyhilliard/nexus/internal/dashboard"
	"github.com/rileyhilliard/nexus/internal/engine"
	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
	"github.com/rileyhilliard/nexus/internal/ui"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the live dashboard (default command)",
	Long: `Show the full-screen dashboard.

When stdout is not a terminal, a one-line text frame is printed per tick
instead, until interrupted.

Keys:
  space/p  pause or resume     d/x  dismiss alert
  1/2/3    1H/24H/7D range     tab  next menu item
  ?        help                q    quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// dashboardCommand runs the TUI, or the text stream when stdout is piped.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(cfgFile, flagOverrides(cmd))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	if !dashboard.IsTerminal(os.Stdout) {
		log, err := consoleLogger(cfg, "engine")
		if err != nil {
			return err
		}
		return streamFrames(ctx, cfg, cmd.OutOrStdout(), log)
	}

	log, closer, err := dashboardLogger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	src := sim.NewSource(cfg.Seed)
	state := sim.NewState(src, time.Now())
	state.TimeRange = timeRange(cfg)

	log.Info("dashboard starting: interval=%s seed=%d", cfg.Interval, cfg.Seed)
	m := dashboard.NewModel(state, src, dashboard.Options{
		Interval:      cfg.Interval,
		AlertDuration: cfg.AlertDuration,
		Logger:        log,
	})
	return dashboard.Run(ctx, m)
}

// streamFrames drives an engine that prints one line per tick to w.
func streamFrames(ctx context.Context, cfg *config.Config, w io.Writer, log logger.Logger) error {
	eng := engine.New(engine.Options{
		Source:        sim.NewSource(cfg.Seed),
		Interval:      cfg.Interval,
		AlertDuration: cfg.AlertDuration,
		Renderers:     []sim.Renderer{ui.NewLineRenderer(w)},
		Logger:        log,
		TimeRange:     timeRange(cfg),
	})
	return eng.Run(ctx)
}

// timeRange returns the configured range tab. Config validation has
// already rejected unknown labels.
func timeRange(cfg *config.Config) sim.TimeRange {
	r, _ := sim.ParseTimeRange(cfg.Dashboard.TimeRange)
	return r
}

// consoleLogger returns a stderr logger at the configured level.
func consoleLogger(cfg *config.Config, component string) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level",
			"Use one of: debug, info, warn, error")
	}
	return logger.NewConsoleLogger(os.Stderr, level, component), nil
}

// dashboardLogger returns a file logger when log.file is set. Otherwise
// logging is discarded, since the TUI owns the terminal.
func dashboardLogger(cfg *config.Config) (logger.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return logger.Noop(), nil, nil
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level",
			"Use one of: debug, info, warn, error")
	}
	log, closer, err := logger.NewFileLogger(cfg.Log.File, level, "dashboard")
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the log file",
			"Check that the directory for log.file exists and is writable")
	}
	return log, closer, nil
}
