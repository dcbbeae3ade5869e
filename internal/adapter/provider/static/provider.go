// Package static serves a word of the day from a fixed rotation list, with
// no network access.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
)

//go:embed entries.json
var defaultEntries []byte

// Provider rotates through a list of pre-translated words by day of year.
type Provider struct {
	entries []provider.AgentWord
	now     func() time.Time
	log     *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// NewProvider creates a Provider over the built-in list.
func NewProvider(logger *slog.Logger, opts ...Option) (*Provider, error) {
	return newProvider(logger, defaultEntries, opts...)
}

// NewProviderFromFile creates a Provider over a JSON list on disk, in the
// same shape as the built-in one.
func NewProviderFromFile(logger *slog.Logger, path string, opts ...Option) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("static: read %s: %w", path, err)
	}
	return newProvider(logger, data, opts...)
}

func newProvider(logger *slog.Logger, data []byte, opts ...Option) (*Provider, error) {
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		entries: entries,
		now:     time.Now,
		log:     logger.With("adapter", "static"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func decodeEntries(data []byte) ([]provider.AgentWord, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("static: decode entries: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("static: entry list is empty")
	}

	entries := make([]provider.AgentWord, 0, len(raw))
	for i, r := range raw {
		w, err := provider.DecodeAgentWord(r)
		if err != nil {
			return nil, fmt.Errorf("static: entry %d: %w", i, err)
		}
		if w.Translations == nil {
			w.Translations = map[string]string{}
		}
		entries = append(entries, *w)
	}
	return entries, nil
}

// Len returns the number of entries in the rotation.
func (p *Provider) Len() int { return len(p.entries) }

// Fetch returns today's entry. If it was served recently, the next entry in
// the rotation that was not is returned instead.
func (p *Provider) Fetch(ctx context.Context, exclude []string) (*provider.SourceResult, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	start := (p.now().YearDay() - 1) % len(p.entries)
	idx := start
	for i := 0; i < len(p.entries); i++ {
		j := (start + i) % len(p.entries)
		if _, ok := excluded[entryID(p.entries[j])]; !ok {
			idx = j
			break
		}
	}

	w := p.entries[idx]
	p.log.DebugContext(ctx, "static entry selected",
		slog.Int("index", idx),
		slog.String("word", w.Word),
	)
	return &provider.SourceResult{Word: &w}, nil
}

func entryID(w provider.AgentWord) string {
	if w.ID != nil {
		return *w.ID
	}
	return domain.DeriveID(w.Word)
}
