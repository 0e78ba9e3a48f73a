package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlr/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		port   int
		host   string
		noLive bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page",
		Long: `Serve the hello-world page over HTTP.

The page is rendered per request from the content store. With live
updates enabled, the clock fragment is pushed to browsers over
WebSocket every live.interval.

Examples:
  htmlr serve
  htmlr serve --port=8080
  htmlr serve --host=0.0.0.0 --no-live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host, noLive)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlr.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlr.json)")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Disable the live WebSocket endpoint")

	return cmd
}

func runServe(ctx context.Context, port int, host string, noLive bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if noLive {
		cfg.Live.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	printBanner()
	info("Serving %s", cfg.URL())
	if cfg.Live.Enabled {
		info("Live updates every %s", cfg.LiveInterval())
	}
	if cfg.Metrics.Enabled {
		info("Metrics at %s%s", cfg.URL(), cfg.Metrics.Path)
	}

	srv := server.New(cfg, server.Deps{Logger: logger, Store: store})
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}
	success("Stopped")
	return nil
}
