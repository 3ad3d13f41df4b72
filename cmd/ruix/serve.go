package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/QAddict/ruix/internal/preview"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview server",
		Long: `Serve renders the page and keeps it live.

Connected browsers receive the updated body whenever a cell changes
through the state API:

  GET  /api/state          all cells
  GET  /api/state/{name}   one cell
  PUT  /api/state/{name}   replace a cell with a JSON value

Examples:
  ruix serve
  ruix serve --port=8080
  ruix serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}

			page, err := loadPage(cfg)
			if err != nil {
				return err
			}
			srv := preview.New(page, preview.Options{
				Addr:            cfg.PreviewAddress(),
				Logger:          logger,
				DisableMetrics:  !cfg.MetricsEnabled(),
				ShutdownTimeout: cfg.Preview.ShutdownTimeout.Duration(),
			})

			w := cmd.ErrOrStderr()
			printBanner(w)
			info(w, "preview at %s", cfg.PreviewURL())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from ruix.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from ruix.yaml)")

	return cmd
}
