// Package llm asks an Anthropic model to pick a word of the day and
// translate it into the configured languages.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-haiku-latest"

// Options configure the client.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// MaxRetries overrides the SDK retry count when >= 0.
	MaxRetries int
}

// Provider is an agent word source backed by the Anthropic Messages API.
type Provider struct {
	client anthropic.Client
	model  string
	langs  domain.LanguageSet
	log    *slog.Logger
}

// NewProvider creates a Provider that asks for translations into langs.
func NewProvider(logger *slog.Logger, langs domain.LanguageSet, opts Options) (*Provider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("llm: api key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithRequestTimeout(opts.Timeout),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.MaxRetries >= 0 {
		reqOpts = append(reqOpts, option.WithMaxRetries(opts.MaxRetries))
	}

	return &Provider{
		client: anthropic.NewClient(reqOpts...),
		model:  opts.Model,
		langs:  langs,
		log:    logger.With("adapter", "llm"),
	}, nil
}

// Fetch asks the model for one word, avoiding the recently served ids.
// Replies that do not contain a valid word object are reported as
// domain.ErrSourceUnavailable.
func (p *Provider) Fetch(ctx context.Context, exclude []string) (*provider.SourceResult, error) {
	prompt := buildPrompt(p.langs.TargetLanguages(), exclude)

	p.log.DebugContext(ctx, "llm request",
		slog.String("model", p.model),
		slog.Int("recent_words", len(exclude)),
	)

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "llm request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("llm: api call: %w: %w", domain.ErrSourceUnavailable, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("llm: empty response: %w", domain.ErrSourceUnavailable)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("llm: %w: %w", domain.ErrSourceUnavailable, err)
	}

	word, err := provider.DecodeAgentWord([]byte(jsonStr))
	if err != nil {
		return nil, fmt.Errorf("llm: %w: %w", domain.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "llm word received",
		slog.String("word", word.Word),
		slog.Int("translations", len(word.Translations)),
	)

	return &provider.SourceResult{Word: word}, nil
}

// buildPrompt creates the prompt for one pick.
func buildPrompt(targets []domain.Language, recent []string) string {
	codes := make([]string, 0, len(targets))
	for _, l := range targets {
		codes = append(codes, fmt.Sprintf("%q (%s)", l.Code, l.Name))
	}

	avoid := "none"
	if len(recent) > 0 {
		avoid = strings.Join(recent, ", ")
	}

	return fmt.Sprintf(`You pick a "word of the day" for an intermediate English learner.

Choose one useful, everyday English word or short phrase. Do not choose any of these recently used words: %s.

Translate it into these languages: %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "word": "<English word>",
  "definition": "<short plain-English definition>",
  "translations": {"<language code>": "<translation>"}
}

Rules:
- Use the language codes exactly as given as keys in "translations"
- Give the single most common translation for each language
- Output ONLY the JSON, no markdown, no explanations`, avoid, strings.Join(codes, ", "))
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
