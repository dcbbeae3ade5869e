// Package elastic asks an Elastic Agent Builder tool for a word of the day.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
)

// DefaultToolID is the tool executed when none is configured.
const DefaultToolID = "word.of.the.day.multilingual"

const statusCompleted = "completed"

var errNoCredentials = errors.New("elastic: api url and api key are required")

// Provider is an agent word source backed by an Elastic tool.
type Provider struct {
	apiURL     string
	apiKey     string
	toolID     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty toolID falls back to DefaultToolID.
func NewProvider(logger *slog.Logger, apiURL, apiKey, toolID string, timeout time.Duration) (*Provider, error) {
	if apiURL == "" || apiKey == "" {
		return nil, errNoCredentials
	}
	if toolID == "" {
		toolID = DefaultToolID
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Provider{
		apiURL:     apiURL,
		apiKey:     apiKey,
		toolID:     toolID,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "elastic"),
	}, nil
}

// Fetch executes the tool, passing recently served ids so the agent can
// avoid them. Any deviation from the expected response shape is reported
// as domain.ErrSourceUnavailable.
func (p *Provider) Fetch(ctx context.Context, exclude []string) (*provider.SourceResult, error) {
	if exclude == nil {
		exclude = []string{}
	}
	payload, err := json.Marshal(toolRequest{
		ToolID:     p.toolID,
		ToolParams: toolParams{RecentWords: exclude},
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("elastic: create request: %w", err)
	}
	req.Header.Set("kbn-xsrf", "true")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+p.apiKey)

	p.log.DebugContext(ctx, "elastic tool call",
		slog.String("tool_id", p.toolID),
		slog.Int("recent_words", len(exclude)),
	)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "elastic request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("elastic: request failed: %w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elastic: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.log.ErrorContext(ctx, "elastic unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(body), 200)),
		)
		return nil, fmt.Errorf("elastic: unexpected status %d: %w", resp.StatusCode, domain.ErrSourceUnavailable)
	}

	word, err := parseResponse(body)
	if err != nil {
		p.log.ErrorContext(ctx, "elastic response rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("elastic: %w: %w", domain.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "elastic word received",
		slog.String("word", word.Word),
		slog.Int("translations", len(word.Translations)),
	)

	return &provider.SourceResult{Word: word}, nil
}

func parseResponse(body []byte) (*provider.AgentWord, error) {
	var resp toolResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, errors.New("no results in response")
	}

	data := resp.Results[0].Data
	if data == nil || data.Execution == nil {
		return nil, errors.New("no execution data in response")
	}
	if data.Execution.Status != statusCompleted {
		return nil, fmt.Errorf("execution status %q", data.Execution.Status)
	}
	if data.Execution.Output == "" {
		return nil, errors.New("no output in execution data")
	}

	return provider.DecodeAgentWord([]byte(data.Execution.Output))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
