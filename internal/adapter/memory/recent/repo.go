// Package recent implements an in-memory recent-words storage. It is used in
// tests and when persistence is disabled.
package recent

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

// Repo keeps recent words in process memory.
type Repo struct {
	mu       sync.Mutex
	records  []domain.RecencyRecord
	writes   int
	readErr  error
	writeErr error
}

// New creates a Repo seeded with records.
func New(records ...domain.RecencyRecord) *Repo {
	return &Repo{records: clone(records)}
}

// Read returns a copy of the stored records.
func (r *Repo) Read(ctx context.Context) ([]domain.RecencyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	return clone(r.records), nil
}

// Write replaces the stored records.
func (r *Repo) Write(ctx context.Context, records []domain.RecencyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	r.records = clone(records)
	r.writes++
	return nil
}

// Snapshot returns the stored records without going through Read.
func (r *Repo) Snapshot() []domain.RecencyRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.records)
}

// Writes returns how many successful writes happened.
func (r *Repo) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// FailReads makes subsequent reads return err (nil restores normal reads).
func (r *Repo) FailReads(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readErr = err
}

// FailWrites makes subsequent writes return err (nil restores normal writes).
func (r *Repo) FailWrites(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeErr = err
}

func clone(records []domain.RecencyRecord) []domain.RecencyRecord {
	out := make([]domain.RecencyRecord, len(records))
	copy(out, records)
	return out
}
