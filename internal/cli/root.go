package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/nexus/internal/config"
	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/rileyhilliard/nexus/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags, shared by every subcommand.
var (
	cfgFile      string
	seedFlag     int64
	intervalFlag time.Duration
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "NEXUS - simulated operations dashboard",
	Long: `NEXUS renders a live, fully simulated operations dashboard in the terminal.

Metrics, servers, logs and alerts are generated by a seeded random walk,
so nothing here talks to a real system.

Examples:
  nexus                         # full-screen dashboard
  nexus --seed 42 --interval 500ms
  nexus snapshot --ticks 20 --format json
  nexus serve --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.nexus.yaml or ~/.config/nexus/config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed; 0 picks one from the clock")
	rootCmd.PersistentFlags().DurationVar(&intervalFlag, "interval", 0, "tick interval (e.g. 1s, 500ms)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		if _, ok := err.(*errors.Error); !ok {
			fmt.Fprintln(os.Stderr)
		}
		os.Exit(1)
	}
}

// overrides are the flag values that take precedence over the config file.
type overrides struct {
	Seed        int64
	SeedSet     bool
	Interval    time.Duration
	IntervalSet bool
	NoColor     bool
}

// flagOverrides collects the global flags the user actually passed.
func flagOverrides(cmd *cobra.Command) overrides {
	return overrides{
		Seed:        seedFlag,
		SeedSet:     cmd.Flags().Changed("seed"),
		Interval:    intervalFlag,
		IntervalSet: cmd.Flags().Changed("interval"),
		NoColor:     noColor,
	}
}

// loadConfig loads the config file (or defaults), applies flag overrides
// and sets the terminal color profile.
func loadConfig(path string, o overrides) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if o.SeedSet {
		cfg.Seed = o.Seed
	}
	if o.IntervalSet {
		if o.Interval < config.MinInterval {
			return nil, errors.New(errors.ErrInput,
				fmt.Sprintf("--interval %s is too short", o.Interval),
				fmt.Sprintf("Use at least %s.", config.MinInterval))
		}
		cfg.Interval = o.Interval
	}
	if o.NoColor {
		cfg.Dashboard.Color = "never"
	}

	ui.ApplyColorMode(cfg.Dashboard.Color)
	return cfg, nil
}
