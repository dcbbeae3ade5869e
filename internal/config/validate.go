package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

var (
	backends = []string{BackendMemory, BackendFile, BackendPostgres, BackendSQLite, BackendRedis}
	sources  = []string{SourceRandom, SourceElastic, SourceLLM, SourceStatic}
	levels   = []string{"debug", "info", "warn", "error"}
	formats  = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains(levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", levels, c.Log.Level)
	}
	if !slices.Contains(formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", formats, c.Log.Format)
	}

	if _, err := c.Languages.LanguageSet(); err != nil {
		return fmt.Errorf("languages: %w", err)
	}

	if err := c.Recent.validate(); err != nil {
		return fmt.Errorf("recent: %w", err)
	}

	switch c.Recent.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres backend")
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
	}

	if !slices.Contains(sources, c.Source.Kind) {
		return fmt.Errorf("source.kind must be one of %v (got %q)", sources, c.Source.Kind)
	}

	switch c.Source.Kind {
	case SourceRandom:
		if err := c.RandomWord.validate(); err != nil {
			return fmt.Errorf("random_word: %w", err)
		}
		if err := validateURL(c.Dictionary.BaseURL); err != nil {
			return fmt.Errorf("dictionary.base_url: %w", err)
		}
	case SourceElastic:
		if c.Elastic.APIURL == "" || c.Elastic.APIKey == "" {
			return fmt.Errorf("elastic.api_url and elastic.api_key are required for the elastic source")
		}
		if err := validateURL(c.Elastic.APIURL); err != nil {
			return fmt.Errorf("elastic.api_url: %w", err)
		}
	case SourceLLM:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for the llm source")
		}
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be >= 0 (got %d)", c.Server.RateLimit)
	}

	return nil
}

// LanguageSet builds the configured language set. English is always
// included and need not be listed.
func (l LanguagesConfig) LanguageSet() (domain.LanguageSet, error) {
	return domain.NewLanguageSet(l.Codes, l.Labels)
}

func (r *RecentConfig) validate() error {
	if !slices.Contains(backends, r.Backend) {
		return fmt.Errorf("backend must be one of %v (got %q)", backends, r.Backend)
	}
	if r.Backend == BackendFile && strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("path is required for the file backend")
	}
	if strings.TrimSpace(r.List) == "" {
		return fmt.Errorf("list must not be empty")
	}
	if r.MaxSize < 0 {
		return fmt.Errorf("max_size must be >= 0 (got %d)", r.MaxSize)
	}
	return nil
}

func (r *RandomWordConfig) validate() error {
	if r.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", r.BatchSize)
	}
	if r.Difficulty < 1 || r.Difficulty > 3 {
		return fmt.Errorf("difficulty must be 1, 2 or 3 (got %d)", r.Difficulty)
	}
	return validateURL(r.BaseURL)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http(s) URL (got %q)", raw)
	}
	return nil
}
