package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

// UniqueList returns a list name no other test uses, so parallel tests can
// share the recent_words table.
func UniqueList(t *testing.T) string {
	t.Helper()
	return "test-" + uuid.New().String()[:8]
}

// SeedRecent inserts records into list in the given order.
func SeedRecent(t *testing.T, pool *pgxpool.Pool, list string, records ...domain.RecencyRecord) {
	t.Helper()
	ctx := context.Background()

	for i, r := range records {
		_, err := pool.Exec(ctx,
			`INSERT INTO recent_words (list, id, ts, position) VALUES ($1, $2, $3, $4)`,
			list, r.ID, r.Timestamp, i,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRecent insert %q: %v", r.ID, err)
		}
	}
}
