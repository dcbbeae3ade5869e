package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/config"
	"github.com/heartmarshall/wordoftheday/internal/transport/middleware"
	"github.com/heartmarshall/wordoftheday/internal/transport/rest"
)

// Server exposes the word of the day over HTTP.
type Server struct {
	httpServer      *http.Server
	limiter         *middleware.RateLimiter
	shutdownTimeout time.Duration
	log             *slog.Logger
}

// NewServer wires the HTTP routes for a.
func NewServer(cfg *config.Config, a *App, logger *slog.Logger) *Server {
	limiter := middleware.NewRateLimiter(time.Minute)

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      newRouter(cfg, a, limiter, logger),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		limiter:         limiter,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		log:             logger,
	}
}

func newRouter(cfg *config.Config, a *App, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	health := rest.NewHealthHandler(a, cfg.Recent.Backend, BuildVersion())
	word := rest.NewWordHandler(a, a.Languages, logger)

	wordMW := middleware.Chain(
		middleware.CORS(cfg.Server.CORS),
		limiter.Limit(cfg.Server.RateLimit),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/live", health.Live)
	mux.HandleFunc("/ready", health.Ready)
	mux.HandleFunc("/health", health.Health)
	mux.Handle("/api/v1/word", wordMW(http.HandlerFunc(word.Today)))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)
}

// ListenAndServe runs the HTTP server until ctx ends, then drains in-flight
// requests within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	defer s.limiter.Stop()

	serveErr := make(chan error, 1)
	s.log.InfoContext(ctx, "http server listening", slog.String("addr", s.httpServer.Addr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
