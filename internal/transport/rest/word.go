package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/service/selection"
	"github.com/heartmarshall/wordoftheday/internal/transport/render"
	"github.com/heartmarshall/wordoftheday/pkg/ctxutil"
)

// wordPicker runs one word-of-the-day selection.
type wordPicker interface {
	Pick(ctx context.Context) (*selection.Result, error)
}

// WordHandler serves the word of the day.
type WordHandler struct {
	picker wordPicker
	langs  domain.LanguageSet
	log    *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(picker wordPicker, langs domain.LanguageSet, logger *slog.Logger) *WordHandler {
	return &WordHandler{picker: picker, langs: langs, log: logger.With("handler", "word")}
}

// Today handles GET /api/v1/word.
func (h *WordHandler) Today(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res, err := h.picker.Pick(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, render.NewWordView(res, h.langs))
}

func (h *WordHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, selection.ErrNoCandidate):
		status, message = http.StatusServiceUnavailable, "no word available right now"
	case errors.Is(err, domain.ErrSourceUnavailable):
		status, message = http.StatusBadGateway, "word source unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "word selection timed out"
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		return
	}

	h.log.ErrorContext(r.Context(), "pick word",
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
	writeError(w, status, message)
}
