// Command server serves the word of the day over HTTP.
//
// Endpoints:
//
//	GET /api/v1/word  runs a selection and returns the word as JSON
//	GET /live         liveness probe
//	GET /ready        readiness probe (recent-words storage reachable)
//	GET /health       storage status, latency and build version
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/wordoftheday/internal/app"
	"github.com/heartmarshall/wordoftheday/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("init pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	if err := app.NewServer(cfg, a, logger).ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}
	logger.Info("server stopped")
}
