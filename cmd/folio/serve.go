package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newServeCommand() *cobra.Command {
	var addr string
	var metrics bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if addr != "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("metrics") {
				cfg.MetricsEnabled = metrics
			}
			app := folio.New(cfg, views.Funcs(), folio.WithLogger(slog.Default()))
			defer app.Close()
			if err := app.Setup(); err != nil {
				return cliError{code: 2, err: err}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				slog.Info("folio: listening", "addr", cfg.Addr, "projects", app.Projects.Len())
				errc <- app.Echo.Start(cfg.Addr)
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			slog.Info("folio: shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Echo.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "serve Prometheus metrics at /metrics")
	return cmd
}
