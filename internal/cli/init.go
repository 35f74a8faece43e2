package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/nexus/internal/config"
	"github.com/rileyhilliard/nexus/internal/errors"
	"github.com/rileyhilliard/nexus/internal/sim"
	"github.com/rileyhilliard/nexus/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initForce          bool
	initNonInteractive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .nexus.yaml configuration",
	Long: `Create a .nexus.yaml file in the current directory.

Prompts for the tick interval, alert duration, seed and display
preferences. With --non-interactive the defaults are written as-is.

Examples:
  nexus init
  nexus init --force
  nexus init --non-interactive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Dir:            ".",
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "write defaults without prompting")
}

// InitOptions configures Init.
type InitOptions struct {
	Dir            string // where .nexus.yaml goes; empty means "."
	Overwrite      bool   // replace an existing file without asking
	NonInteractive bool   // write defaults, no prompts
}

// initHeader is written above the marshalled config.
const initHeader = `# NEXUS configuration
# Run 'nexus' to open the dashboard, or 'nexus serve' for the HTTP API.

`

// Init creates a new .nexus.yaml configuration file.
func Init(w io.Writer, opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				configPath+" already exists",
				"Pass --force to replace it")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't read your answer",
				"Pass --force to replace the file without asking")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  nexus            - Open the dashboard")
	fmt.Fprintln(w, "  nexus snapshot   - Print one simulated frame")
	fmt.Fprintln(w, "  nexus serve      - Serve the frame over HTTP")
	return nil
}

// writeConfig marshals cfg under initHeader.
func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal, "Couldn't encode the config", "")
	}
	if err := os.WriteFile(path, append([]byte(initHeader), data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check that the directory exists and is writable")
	}
	return nil
}

// promptConfig asks for each setting, starting from the values in cfg.
func promptConfig(cfg *config.Config) error {
	interval := cfg.Interval.String()
	alertDuration := cfg.AlertDuration.String()
	seed := strconv.FormatInt(cfg.Seed, 10)
	timeRange := cfg.Dashboard.TimeRange
	color := cfg.Dashboard.Color
	level := cfg.Log.Level
	logFile := cfg.Log.File

	rangeOptions := make([]huh.Option[string], 0, len(sim.TimeRanges()))
	for _, r := range sim.TimeRanges() {
		rangeOptions = append(rangeOptions, huh.NewOption(r.String(), r.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tick interval").
				Description("How often the simulation steps (e.g. 1s, 500ms)").
				Value(&interval).
				Validate(validateDurationInput(config.MinInterval)),
			huh.NewInput().
				Title("Alert duration").
				Description("How long an alert popup stays up").
				Value(&alertDuration).
				Validate(validateDurationInput(time.Millisecond)),
			huh.NewInput().
				Title("Seed").
				Description("0 picks a new seed on every run").
				Value(&seed).
				Validate(func(s string) error {
					if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
						return fmt.Errorf("seed must be a whole number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default time range").
				Options(rangeOptions...).
				Value(&timeRange),
			huh.NewSelect[string]().
				Title("Color").
				Options(
					huh.NewOption("auto", "auto"),
					huh.NewOption("always", "always"),
					huh.NewOption("never", "never"),
				).
				Value(&color),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("debug", "debug"),
					huh.NewOption("info", "info"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&level),
			huh.NewInput().
				Title("Dashboard log file (optional)").
				Description("The full-screen dashboard discards logs unless this is set").
				Placeholder("nexus.log (leave empty to skip)").
				Value(&logFile),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read your answers",
			"Run with --non-interactive to write the defaults")
	}

	// The validators above have already accepted these.
	cfg.Interval, _ = time.ParseDuration(strings.TrimSpace(interval))
	cfg.AlertDuration, _ = time.ParseDuration(strings.TrimSpace(alertDuration))
	cfg.Seed, _ = strconv.ParseInt(strings.TrimSpace(seed), 10, 64)
	cfg.Dashboard.TimeRange = timeRange
	cfg.Dashboard.Color = color
	cfg.Log.Level = level
	cfg.Log.File = strings.TrimSpace(logFile)
	return nil
}

// validateDurationInput returns a huh validator requiring a duration of at
// least min.
func validateDurationInput(min time.Duration) func(string) error {
	return func(s string) error {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a duration, try something like 1s or 500ms")
		}
		if d < min {
			return fmt.Errorf("must be at least %s", min)
		}
		return nil
	}
}
