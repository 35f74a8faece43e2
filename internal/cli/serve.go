package cli

import (
	"context"

	"github.com/rileyhilliard/nexus/internal/config"
	"github.com/rileyhilliard/nexus/internal/engine"
	"github.com/rileyhilliard/nexus/internal/logger"
	"github.com/rileyhilliard/nexus/internal/sim"
	"github.com/rileyhilliard/nexus/internal/web"
	"github.com/spf13/cobra"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard frame over HTTP",
	Long: `Run the simulation and expose it as a JSON API.

Endpoints:
  GET  /healthz
  GET  /api/frame
  POST /api/pause
  POST /api/alert/dismiss
  PUT  /api/time-range/{1H|24H|7D}
  PUT  /api/menu/{item}

Examples:
  nexus serve
  nexus serve --addr 127.0.0.1:9000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile, flagOverrides(cmd))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Serve.Addr = serveAddrFlag
		}
		log, err := consoleLogger(cfg, "serve")
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(cmd.Context())
		defer cancel()
		return serve(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", config.DefaultConfig().Serve.Addr, "listen address")
}

// serve runs the engine and the HTTP server until ctx is cancelled or
// either of them fails.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eng := engine.New(engine.Options{
		Source:        sim.NewSource(cfg.Seed),
		Interval:      cfg.Interval,
		AlertDuration: cfg.AlertDuration,
		Logger:        log,
		TimeRange:     timeRange(cfg),
	})
	srv := web.New(eng, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- eng.Run(ctx)
	}()

	err := srv.Start(ctx, cfg.Serve.Addr)
	cancel()
	if runErr := <-done; err == nil {
		err = runErr
	}
	return err
}
