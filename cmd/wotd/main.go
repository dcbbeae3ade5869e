// Command wotd prints today's word of the day.
//
// The word is printed as a concept line followed by one "LABEL: word" row
// per configured language, or as JSON with -json. The chosen word is
// remembered in the recent-words store so the next run picks another one.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/app"
	"github.com/heartmarshall/wordoftheday/internal/config"
	"github.com/heartmarshall/wordoftheday/internal/service/selection"
	"github.com/heartmarshall/wordoftheday/internal/transport/render"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	asJSON := flag.Bool("json", false, "print the word as JSON")
	compact := flag.Bool("compact", false, "omit the concept line")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall run timeout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "\n"+config.Usage())
	}
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, *asJSON, *compact); err != nil {
		logger.Error("word of the day failed", slog.String("error", err.Error()))
		if errors.Is(err, selection.ErrNoCandidate) {
			fmt.Fprintln(os.Stderr, "Could not find a word with translations. Try again later.")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, asJSON, compact bool) error {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Pick(ctx)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(render.NewWordView(res, a.Languages))
	}
	return render.Text(os.Stdout, res.Record, a.Languages, compact)
}
