// Package wordofday orchestrates one selection run: it reads the recency
// memory, asks the word source for candidates, resolves them into a word
// record and remembers the chosen id.
package wordofday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
	"github.com/heartmarshall/wordoftheday/internal/service/selection"
	"github.com/heartmarshall/wordoftheday/pkg/ctxutil"
)

type wordSource interface {
	// Fetch returns either a candidate batch or a single agent word.
	// exclude lists recently served ids the source should avoid.
	Fetch(ctx context.Context, exclude []string) (*provider.SourceResult, error)
}

type recencyStore interface {
	IDs(ctx context.Context) []string
	Push(ctx context.Context, id string)
}

type resolver interface {
	Resolve(ctx context.Context, candidates []domain.Candidate, difficulty string, exclude []string) (*selection.Result, error)
}

// Service runs word-of-the-day selection.
type Service struct {
	log      *slog.Logger
	source   wordSource
	recent   recencyStore
	resolver resolver
	langs    domain.LanguageSet
}

// NewService creates a Service.
func NewService(
	logger *slog.Logger,
	source wordSource,
	recent recencyStore,
	resolver resolver,
	langs domain.LanguageSet,
) *Service {
	return &Service{
		log:      logger.With("service", "wordofday"),
		source:   source,
		recent:   recent,
		resolver: resolver,
		langs:    langs,
	}
}

// Languages returns the configured display languages.
func (s *Service) Languages() domain.LanguageSet { return s.langs }

// Pick selects today's word and records it as recently served.
//
// Source failures are returned wrapped in domain.ErrSourceUnavailable.
// selection.ErrNoCandidate is returned when no candidate had a dictionary
// entry.
func (s *Service) Pick(ctx context.Context) (*selection.Result, error) {
	log := s.log
	if runID := ctxutil.RunIDFromCtx(ctx); runID != "" {
		log = log.With(slog.String("run_id", runID))
	}

	exclude := s.recent.IDs(ctx)
	log.DebugContext(ctx, "recent words loaded", slog.Int("count", len(exclude)))

	src, err := s.source.Fetch(ctx, exclude)
	if err != nil {
		return nil, sourceError(err)
	}
	if src == nil {
		return nil, fmt.Errorf("word source returned nothing: %w", domain.ErrSourceUnavailable)
	}

	var res *selection.Result
	switch {
	case src.Word.IsResolved():
		res, err = s.fromAgent(ctx, log, *src.Word, exclude)
	case src.Word != nil:
		res, err = s.resolver.Resolve(ctx, []domain.Candidate{src.Word.Word}, "", exclude)
	default:
		log.InfoContext(ctx, "candidate batch fetched",
			slog.Int("candidates", len(src.Candidates)),
			slog.Int("difficulty", src.Difficulty),
		)
		res, err = s.resolver.Resolve(ctx, src.Candidates, selection.DifficultyLabel(src.Difficulty), exclude)
	}
	if err != nil {
		return nil, err
	}

	s.recent.Push(ctx, res.Record.ID)

	log.InfoContext(ctx, "word of the day selected",
		slog.String("word", res.Record.Word),
		slog.String("id", res.Record.ID),
		slog.Bool("degraded", res.Degraded),
		slog.Int("coverage", res.Record.Coverage()),
	)
	return res, nil
}

func (s *Service) fromAgent(ctx context.Context, log *slog.Logger, w provider.AgentWord, exclude []string) (*selection.Result, error) {
	if domain.DeriveID(w.Word) == "" {
		return nil, fmt.Errorf("agent returned no word: %w", domain.ErrSourceUnavailable)
	}

	rec := selection.FromAgent(w, s.langs)
	for _, id := range exclude {
		if id == rec.ID {
			// A single pre-resolved word has no alternative to fall back to.
			log.WarnContext(ctx, "agent returned a recently served word", slog.String("id", rec.ID))
			break
		}
	}

	return &selection.Result{
		Record:   rec,
		Degraded: rec.Coverage() == 0,
		Attempts: 1,
	}, nil
}

func sourceError(err error) error {
	if errors.Is(err, domain.ErrSourceUnavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("fetch words: %w", err)
	}
	return fmt.Errorf("fetch words: %w: %w", domain.ErrSourceUnavailable, err)
}
