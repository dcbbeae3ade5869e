// Package recency keeps a bounded memory of recently served word ids so that
// consecutive runs do not repeat a word.
package recency

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

type storage interface {
	// Read returns the persisted records, most recent first. A missing store
	// reads as an empty slice with a nil error.
	Read(ctx context.Context) ([]domain.RecencyRecord, error)
	// Write replaces the persisted records.
	Write(ctx context.Context, records []domain.RecencyRecord) error
}

// Policy bounds the store. A non-positive value disables the bound.
type Policy struct {
	TTL     time.Duration
	MaxSize int
}

// Store implements the recency memory on top of a storage backend.
// Storage failures never reach the caller: reads degrade to an empty list
// and writes are best-effort.
type Store struct {
	log     *slog.Logger
	storage storage
	policy  Policy
	now     func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store.
func NewStore(logger *slog.Logger, storage storage, policy Policy, opts ...Option) *Store {
	s := &Store{
		log:     logger.With("service", "recency"),
		storage: storage,
		policy:  policy,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the maintained records, most recent first. Expired records
// and duplicate ids are dropped and the cleaned list is written back.
func (s *Store) Load(ctx context.Context) []domain.RecencyRecord {
	records, err := s.storage.Read(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "recent words unreadable, starting empty",
			slog.String("error", err.Error()),
		)
		return []domain.RecencyRecord{}
	}

	cleaned := s.maintain(records)
	if dropped := len(records) - len(cleaned); dropped > 0 {
		s.log.DebugContext(ctx, "recent words pruned", slog.Int("dropped", dropped))
	}

	s.save(ctx, cleaned)
	return cleaned
}

// IDs returns the ids of the maintained records, most recent first.
func (s *Store) IDs(ctx context.Context) []string {
	records := s.Load(ctx)
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// Push records id as served now, moving it to the front.
// An empty id is ignored.
func (s *Store) Push(ctx context.Context, id string) {
	if id == "" {
		return
	}

	current := s.Load(ctx)

	records := make([]domain.RecencyRecord, 0, len(current)+1)
	records = append(records, domain.RecencyRecord{ID: id, Timestamp: s.now().UnixMilli()})
	for _, r := range current {
		if r.ID != id {
			records = append(records, r)
		}
	}

	if s.policy.MaxSize > 0 && len(records) > s.policy.MaxSize {
		records = records[:s.policy.MaxSize]
	}

	s.save(ctx, records)
}

// Clear removes every record.
func (s *Store) Clear(ctx context.Context) {
	s.save(ctx, []domain.RecencyRecord{})
}

// maintain applies TTL expiry and collapses duplicate ids to their first
// (most recent) occurrence.
func (s *Store) maintain(records []domain.RecencyRecord) []domain.RecencyRecord {
	nowMs := s.now().UnixMilli()
	ttlMs := s.policy.TTL.Milliseconds()

	out := make([]domain.RecencyRecord, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		if ttlMs > 0 && r.HasTimestamp() && nowMs-r.Timestamp > ttlMs {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

func (s *Store) save(ctx context.Context, records []domain.RecencyRecord) {
	if err := s.storage.Write(ctx, records); err != nil {
		s.log.WarnContext(ctx, "recent words not saved",
			slog.Int("records", len(records)),
			slog.String("error", err.Error()),
		)
	}
}
