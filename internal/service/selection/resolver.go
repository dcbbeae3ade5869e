// Package selection picks the word of the day: it chooses the best dictionary
// sense for a candidate, extracts a normalized word record and walks a batch
// of candidates until one meets the translation coverage threshold.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

// minCoverage is the number of target-language translations a record needs
// to be accepted outright.
const minCoverage = 1

type dictionaryLookup interface {
	// LookupEntry returns the entry for word, or nil, nil when the dictionary
	// has none.
	LookupEntry(ctx context.Context, word string) (*domain.DictionaryEntry, error)
}

// Result is the outcome of resolving a batch.
type Result struct {
	Record domain.WordRecord
	// Degraded is set when no candidate met the coverage threshold and the
	// last produced record was returned instead.
	Degraded bool
	// Attempts counts candidates that were looked up.
	Attempts int
}

// Resolver walks candidate batches against a dictionary.
type Resolver struct {
	log   *slog.Logger
	dict  dictionaryLookup
	langs domain.LanguageSet
}

// NewResolver creates a Resolver for the configured languages.
func NewResolver(logger *slog.Logger, dict dictionaryLookup, langs domain.LanguageSet) *Resolver {
	return &Resolver{
		log:   logger.With("service", "selection"),
		dict:  dict,
		langs: langs,
	}
}

// Resolve tries candidates strictly in order and returns the first record
// with at least one target-language translation. Candidates whose id is in
// exclude are skipped. Per-candidate failures are logged and skipped.
//
// When no record qualifies, the last produced record is returned with
// Degraded set. ErrNoCandidate is returned when no candidate produced a
// record at all. A cancelled ctx stops the walk with ctx.Err().
func (r *Resolver) Resolve(ctx context.Context, candidates []domain.Candidate, difficulty string, exclude []string) (*Result, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var (
		last     *domain.WordRecord
		attempts int
	)

	for i, word := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := domain.DeriveID(word)
		if id == "" {
			continue
		}
		if _, skip := excluded[id]; skip {
			r.log.DebugContext(ctx, "candidate recently served, skipping", slog.String("word", word))
			continue
		}

		attempts++
		r.log.DebugContext(ctx, "trying candidate",
			slog.String("word", word),
			slog.Int("position", i+1),
			slog.Int("of", len(candidates)),
		)

		entry, err := r.lookup(ctx, word)
		if errors.Is(err, domain.ErrNoDictionaryEntry) {
			r.log.InfoContext(ctx, "no dictionary entry, trying next", slog.String("word", word))
			continue
		}
		if err != nil {
			r.log.WarnContext(ctx, "candidate lookup failed, trying next",
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}

		sense, _ := SelectSense(entry.Senses, r.langs.Targets())
		rec := Extract(sense, word, difficulty, r.langs)

		if rec.Coverage() >= minCoverage {
			r.log.InfoContext(ctx, "candidate accepted",
				slog.String("word", word),
				slog.Int("coverage", rec.Coverage()),
			)
			return &Result{Record: rec, Attempts: attempts}, nil
		}

		r.log.InfoContext(ctx, "no target-language translations, trying next", slog.String("word", word))
		last = &rec
	}

	if last == nil {
		return nil, ErrNoCandidate
	}

	r.log.WarnContext(ctx, "no candidate has translations, using last record",
		slog.String("word", last.Word),
	)
	return &Result{Record: *last, Degraded: true, Attempts: attempts}, nil
}

// lookup turns the dictionary's "nil, nil" answer into ErrNoDictionaryEntry.
func (r *Resolver) lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	entry, err := r.dict.LookupEntry(ctx, word)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%q: %w", word, domain.ErrNoDictionaryEntry)
	}
	return entry, nil
}
