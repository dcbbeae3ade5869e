// Command recent inspects the recent-words store.
//
// It prints the maintained list (expired and duplicate entries dropped),
// most recent first, one "id<TAB>timestamp" row each. -clear empties the
// store instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/app"
	"github.com/heartmarshall/wordoftheday/internal/config"
	"github.com/heartmarshall/wordoftheday/internal/domain"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	clearAll := flag.Bool("clear", false, "remove every remembered word")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("init pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	if *clearAll {
		a.Recent.Clear(ctx)
		logger.Info("recent words cleared", slog.String("backend", cfg.Recent.Backend))
		return
	}

	if err := printRecords(os.Stdout, a.Recent.Load(ctx)); err != nil {
		logger.Error("print recent words", slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}
}

func printRecords(w io.Writer, records []domain.RecencyRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no recent words")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range records {
		ts := "unknown"
		if r.HasTimestamp() {
			ts = time.UnixMilli(r.Timestamp).UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.ID, ts)
	}
	return tw.Flush()
}
