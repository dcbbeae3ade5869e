package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	filerecent "github.com/heartmarshall/wordoftheday/internal/adapter/file/recent"
	memrecent "github.com/heartmarshall/wordoftheday/internal/adapter/memory/recent"
	"github.com/heartmarshall/wordoftheday/internal/adapter/postgres"
	pgrecent "github.com/heartmarshall/wordoftheday/internal/adapter/postgres/recent"
	"github.com/heartmarshall/wordoftheday/internal/adapter/provider/elastic"
	"github.com/heartmarshall/wordoftheday/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordoftheday/internal/adapter/provider/llm"
	"github.com/heartmarshall/wordoftheday/internal/adapter/provider/randomword"
	"github.com/heartmarshall/wordoftheday/internal/adapter/provider/static"
	redisrecent "github.com/heartmarshall/wordoftheday/internal/adapter/redis/recent"
	sqliterecent "github.com/heartmarshall/wordoftheday/internal/adapter/sqlite/recent"
	"github.com/heartmarshall/wordoftheday/internal/config"
	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
	"github.com/heartmarshall/wordoftheday/internal/service/recency"
	"github.com/heartmarshall/wordoftheday/internal/service/selection"
	"github.com/heartmarshall/wordoftheday/internal/service/wordofday"
	"github.com/heartmarshall/wordoftheday/pkg/ctxutil"
)

type recentStorage interface {
	Read(ctx context.Context) ([]domain.RecencyRecord, error)
	Write(ctx context.Context, records []domain.RecencyRecord) error
}

type wordSource interface {
	Fetch(ctx context.Context, exclude []string) (*provider.SourceResult, error)
}

// App is the wired selection pipeline shared by the commands.
type App struct {
	Languages domain.LanguageSet
	Recent    *recency.Store
	Words     *wordofday.Service

	log     *slog.Logger
	storage recentStorage
	closers []func()
}

// New builds the pipeline described by cfg. Close must be called to release
// storage connections.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	langs, err := cfg.Languages.LanguageSet()
	if err != nil {
		return nil, fmt.Errorf("languages: %w", err)
	}

	a := &App{Languages: langs, log: logger}

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Recent.Backend, err)
	}
	a.storage = storage

	source, dict, err := newSource(cfg, langs, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create %s source: %w", cfg.Source.Kind, err)
	}

	a.Recent = recency.NewStore(logger, storage, recency.Policy{
		TTL:     cfg.Recent.TTL,
		MaxSize: cfg.Recent.MaxSize,
	})
	resolver := selection.NewResolver(logger, dict, langs)
	a.Words = wordofday.NewService(logger, source, a.Recent, resolver, langs)

	logger.InfoContext(ctx, "pipeline ready",
		slog.String("source", cfg.Source.Kind),
		slog.String("backend", cfg.Recent.Backend),
		slog.Any("languages", langs.Codes()),
	)
	return a, nil
}

// Pick runs one selection under a fresh run id.
func (a *App) Pick(ctx context.Context) (*selection.Result, error) {
	return a.Words.Pick(ctxutil.WithNewRunID(ctx))
}

// Ping checks that the recency storage answers reads.
func (a *App) Ping(ctx context.Context) error {
	if a.storage == nil {
		return errors.New("storage not initialized")
	}
	_, err := a.storage.Read(ctx)
	return err
}

// Close releases storage resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config) (recentStorage, error) {
	list := cfg.Recent.List

	switch cfg.Recent.Backend {
	case config.BackendMemory:
		return memrecent.New(), nil

	case config.BackendFile:
		return filerecent.New(cfg.Recent.Path), nil

	case config.BackendPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, a.log); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return pgrecent.New(pool, list), nil

	case config.BackendSQLite:
		repo, err := sqliterecent.Open(ctx, cfg.SQLite.Path, list)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, a.closeWith("sqlite", repo.Close))
		return repo, nil

	case config.BackendRedis:
		repo, err := redisrecent.New(ctx, redisrecent.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, list)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, a.closeWith("redis", repo.Close))
		return repo, nil
	}

	return nil, fmt.Errorf("unknown backend %q", cfg.Recent.Backend)
}

func (a *App) closeWith(name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			a.log.Warn("close storage",
				slog.String("backend", name),
				slog.String("error", err.Error()),
			)
		}
	}
}

// newSource returns the configured word source and the dictionary used to
// resolve its candidates.
func newSource(cfg *config.Config, langs domain.LanguageSet, logger *slog.Logger) (wordSource, *freedict.Provider, error) {
	dict := freedict.NewProviderWithURL(cfg.Dictionary.BaseURL, logger).WithTimeout(cfg.Dictionary.Timeout)

	switch cfg.Source.Kind {
	case config.SourceRandom:
		return randomword.NewProviderWithURL(cfg.RandomWord.BaseURL, logger, randomword.Options{
			BatchSize:  cfg.RandomWord.BatchSize,
			Difficulty: cfg.RandomWord.Difficulty,
			Timeout:    cfg.RandomWord.Timeout,
		}), dict, nil

	case config.SourceElastic:
		p, err := elastic.NewProvider(logger, cfg.Elastic.APIURL, cfg.Elastic.APIKey, cfg.Elastic.ToolID, cfg.Elastic.Timeout)
		return p, dict, err

	case config.SourceLLM:
		p, err := llm.NewProvider(logger, langs, llm.Options{
			APIKey:     cfg.LLM.APIKey,
			Model:      cfg.LLM.Model,
			BaseURL:    cfg.LLM.BaseURL,
			Timeout:    cfg.LLM.Timeout,
			MaxRetries: cfg.LLM.MaxRetries,
		})
		return p, dict, err

	case config.SourceStatic:
		if cfg.Static.Path != "" {
			p, err := static.NewProviderFromFile(logger, cfg.Static.Path)
			return p, dict, err
		}
		p, err := static.NewProvider(logger)
		return p, dict, err
	}

	return nil, nil, fmt.Errorf("unknown source %q", cfg.Source.Kind)
}
