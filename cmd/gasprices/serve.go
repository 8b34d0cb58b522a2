package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/gasprices/internal/config"
	"github.com/rubiojr/gasprices/internal/server"
	"github.com/rubiojr/gasprices/internal/view"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "HTTP listen address",
			Value:   config.DefaultAddr,
			EnvVars: []string{"GASPRICES_ADDR"},
		},
		&cli.DurationFlag{
			Name:    "refresh-interval",
			Usage:   "Refetch prices periodically (0 disables)",
			EnvVars: []string{"GASPRICES_REFRESH_INTERVAL"},
		},
	)

	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the station list as a web page",
		Flags:  flags,
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	level, _ := config.ParseLogLevel(cfg.LogLevel)

	logger := httplog.NewLogger("gasprices", httplog.Options{
		JSON:            c.String("log-format") == "json",
		LogLevel:        level,
		Concise:         true,
		QuietDownPeriod: 10 * time.Second,
	})

	if err := view.LoadTemplates(); err != nil {
		return err
	}

	b, err := newBoard(cfg, logger.Logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial load. A failure leaves the list empty until the next refresh.
	_ = b.Refresh(ctx)

	if cfg.RefreshInterval > 0 {
		go b.Run(ctx, cfg.RefreshInterval)
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: server.New(b, logger, server.Options{
			DefaultFuel: cfg.FuelKey(),
			DefaultLang: cfg.Lang,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", cfg.Addr, "postcode", cfg.Postcode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", slog.Any("error", err))
		return err
	}
	return nil
}
