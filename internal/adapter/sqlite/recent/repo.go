// Package recent stores the recency list in a local SQLite database.
package recent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/migrations"
)

const table = "recent_words"

// Repo keeps one named list of recency records in SQLite.
type Repo struct {
	db   *sql.DB
	list string
}

// Open opens (creating if needed) the database at path, applies the
// embedded migrations and returns a repo for list.
func Open(ctx context.Context, path, list string) (*Repo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repo{db: db, list: list}, nil
}

// Close closes the SQLite handle.
func (r *Repo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Read returns the list, most recent first.
func (r *Repo) Read(ctx context.Context) ([]domain.RecencyRecord, error) {
	rows, err := sq.Select("id", "ts").
		From(table).
		Where(sq.Eq{"list": r.list}).
		OrderBy("position ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("select recent words: %w", err)
	}
	defer rows.Close()

	records := []domain.RecencyRecord{}
	for rows.Next() {
		var rec domain.RecencyRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scan recent word: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent words: %w", err)
	}
	return records, nil
}

// Write replaces the whole list in one transaction.
func (r *Repo) Write(ctx context.Context, records []domain.RecencyRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
			}
		}
	}()

	if _, err = sq.Delete(table).Where(sq.Eq{"list": r.list}).RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("delete recent words: %w", err)
	}

	if len(records) > 0 {
		ins := sq.Insert(table).Columns("list", "id", "ts", "position")
		for i, rec := range records {
			ins = ins.Values(r.list, rec.ID, rec.Timestamp, i)
		}
		if _, err = ins.Suffix("ON CONFLICT (list, id) DO NOTHING").RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("insert recent words: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
