package main

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/urfave/cli"

	"github.com/claes/kiloview/internal/config"
	apphttp "github.com/claes/kiloview/internal/http"
	"github.com/claes/kiloview/internal/middleware"
)

func main() {
	// Structured logging to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{})))

	// Load .env if present (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	app := cli.NewApp()
	app.Name = "kiloview"
	app.Usage = "lightweight HTTP media server for viewing photos and videos"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "media-root",
			Usage: "path to the media directory (default: MEDIA_ROOT env var)",
		},
		cli.StringFlag{
			Name:  "host",
			Usage: "address to bind to (default: HOST env var or 0.0.0.0)",
		},
		cli.StringFlag{
			Name:  "port",
			Usage: "port to listen on (default: PORT env var or 8000)",
		},
		cli.StringFlag{
			Name:  "cors-origins",
			Usage: "comma-separated allowed CORS origins (default: CORS_ORIGINS env var or *)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Environment supplies defaults; flags take precedence.
	cfg := config.Load()
	if v := c.String("media-root"); v != "" {
		cfg.RootDir = v
	} else if cfg.RootDir == "" && c.NArg() > 0 {
		// accept positional arg if provided
		cfg.RootDir = c.Args().First()
	}
	if v := c.String("host"); v != "" {
		cfg.Host = v
	}
	if v := c.String("port"); v != "" {
		cfg.Port = v
	}
	if v := c.String("cors-origins"); v != "" {
		cfg.CORSOrigins = v
	}

	if cfg.RootDir == "" {
		return cli.NewExitError("missing media root: pass --media-root PATH or set MEDIA_ROOT", 1)
	}
	if fi, err := os.Stat(cfg.RootDir); err != nil || !fi.IsDir() {
		return cli.NewExitError("invalid media root: "+cfg.RootDir, 1)
	}

	logger := slog.Default()

	var handler nethttp.Handler = apphttp.NewServer(cfg.RootDir, logger)
	handler = middleware.RequestLog(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(handler)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	srv := &nethttp.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "root", cfg.RootDir)
		if err := srv.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-done:
		// proceed to shutdown
	case err := <-errCh:
		return cli.NewExitError("listen failed: "+err.Error(), 1)
	}
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", "err", err)
		_ = srv.Close()
	}
	logger.Info("server stopped")
	return nil
}
