package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

const defaultBaseURL = "https://freedictionaryapi.com/api/v1/entries/en"

// Provider looks up English headwords in the Free Dictionary API, including
// per-sense translations.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Free Dictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "freedict"),
	}
}

// WithTimeout overrides the HTTP client timeout.
func (p *Provider) WithTimeout(d time.Duration) *Provider {
	if d > 0 {
		p.httpClient.Timeout = d
	}
	return p
}

// LookupEntry fetches the dictionary entry for word.
// Returns nil, nil if the word is not found (HTTP 404 or a body without
// word/entries). Only the first entry is mapped; a missing senses list
// yields an entry with zero senses.
func (p *Provider) LookupEntry(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word) + "?translations=true"

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d: %w", resp.StatusCode, domain.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w: %w", domain.ErrSourceUnavailable, err)
	}

	if payload.Word == "" || len(payload.Entries) == 0 {
		return nil, nil
	}

	entry := mapAPIResponse(payload)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(payload.Entries)),
		slog.Int("senses", len(entry.Senses)),
	)

	return entry, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}

// mapAPIResponse converts the first API entry into a domain.DictionaryEntry.
// Empty definitions stay nil so the sense selector can tell them apart.
func mapAPIResponse(payload apiResponse) *domain.DictionaryEntry {
	entry := &domain.DictionaryEntry{
		Word:   payload.Word,
		Senses: []domain.Sense{},
	}

	first := payload.Entries[0]
	var pos *string
	if first.PartOfSpeech != "" {
		p := first.PartOfSpeech
		pos = &p
	}

	for _, s := range first.Senses {
		sense := domain.Sense{
			PartOfSpeech: pos,
			Translations: make([]domain.Translation, 0, len(s.Translations)),
		}
		if def := strings.TrimSpace(s.Definition); def != "" {
			sense.Definition = &def
		}
		for _, tr := range s.Translations {
			sense.Translations = append(sense.Translations, domain.Translation{
				LanguageCode: strings.ToLower(tr.Language.Code),
				Word:         tr.Word,
			})
		}
		entry.Senses = append(entry.Senses, sense)
	}

	return entry
}
