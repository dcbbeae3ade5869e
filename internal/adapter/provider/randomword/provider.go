// Package randomword fetches batches of random English headwords from the
// random-word-api service.
package randomword

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
)

const (
	defaultBaseURL    = "https://random-word-api.herokuapp.com/word"
	defaultBatchSize  = 5
	defaultDifficulty = 1
)

// Options tune the batch request.
type Options struct {
	// BatchSize is the number of words requested per fetch.
	BatchSize int
	// Difficulty is the upstream tier: 1 easy, 2 medium-easy, 3 medium.
	Difficulty int
	Timeout    time.Duration
}

// Provider is a batch word source.
type Provider struct {
	baseURL    string
	batchSize  int
	difficulty int
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default random-word-api URL.
func NewProvider(logger *slog.Logger, opts Options) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger, opts)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger, opts Options) *Provider {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Difficulty <= 0 {
		opts.Difficulty = defaultDifficulty
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    baseURL,
		batchSize:  opts.BatchSize,
		difficulty: opts.Difficulty,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        logger.With("adapter", "randomword"),
	}
}

// Fetch requests one batch of candidate words. The upstream has no way to
// exclude words, so exclude is left to the resolver.
func (p *Provider) Fetch(ctx context.Context, _ []string) (*provider.SourceResult, error) {
	q := url.Values{}
	q.Set("number", strconv.Itoa(p.batchSize))
	q.Set("diff", strconv.Itoa(p.difficulty))
	reqURL := p.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("randomword: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "randomword request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("randomword: request failed: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("randomword: unexpected status %d: %w", resp.StatusCode, domain.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("randomword: read body: %w", err)
	}

	var words []string
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, fmt.Errorf("randomword: decode json: %w: %w", domain.ErrSourceUnavailable, err)
	}

	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) != "" {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("randomword: empty batch: %w", domain.ErrSourceUnavailable)
	}

	p.log.DebugContext(ctx, "randomword response",
		slog.Int("difficulty", p.difficulty),
		slog.Any("words", candidates),
	)

	return &provider.SourceResult{
		Candidates: candidates,
		Difficulty: p.difficulty,
	}, nil
}
