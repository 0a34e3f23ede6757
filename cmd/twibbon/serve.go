package main

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/moklet-dev/twibbon/internal/errors"
	"github.com/moklet-dev/twibbon/internal/server"
	"github.com/moklet-dev/twibbon/internal/site"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start an HTTP server that renders the page on every request.

Routes:
  /                   full page
  /section            features section fragment
  /metrics            Prometheus metrics
  /healthz            liveness

Examples:
  twibbon serve
  twibbon serve --port=8080 --host=0.0.0.0`,
		Annotations: map[string]string{needsConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			b := site.New(cfg,
				site.WithLogger(g.logger),
				site.WithMetrics(site.NewMetrics(site.WithRegistry(reg))),
			)
			srv := server.New(server.Config{
				Addr:     cfg.DevAddress(),
				Site:     b,
				Registry: reg,
				Gatherer: reg,
				Logger:   g.logger,
			})

			g.logger.Info("serving", "url", cfg.DevURL())
			if err := srv.Run(ctx); err != nil {
				return errors.FromError(err, errors.CodeServe)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from twibbon.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from twibbon.json)")

	return cmd
}
