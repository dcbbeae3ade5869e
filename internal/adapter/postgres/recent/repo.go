// Package recent stores the recency list in PostgreSQL.
package recent

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/wordoftheday/internal/adapter/postgres"
	"github.com/heartmarshall/wordoftheday/internal/domain"
)

const table = "recent_words"

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo keeps one named list of recency records in the recent_words table.
// Row order is kept in the position column.
type Repo struct {
	db   postgres.DB
	tx   *postgres.TxManager
	list string
}

// New creates a repo for list.
func New(db postgres.DB, list string) *Repo {
	return &Repo{
		db:   db,
		tx:   postgres.NewTxManager(db),
		list: list,
	}
}

// Read returns the list, most recent first.
func (r *Repo) Read(ctx context.Context) ([]domain.RecencyRecord, error) {
	query, args, err := builder.
		Select("id", "ts").
		From(table).
		Where(sq.Eq{"list": r.list}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "recent_words", r.list)
	}
	defer rows.Close()

	records := []domain.RecencyRecord{}
	for rows.Next() {
		var rec domain.RecencyRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp); err != nil {
			return nil, postgres.MapError(err, "recent_words", r.list)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "recent_words", r.list)
	}

	return records, nil
}

// Write replaces the whole list in one transaction. Repeated ids keep their
// first position.
func (r *Repo) Write(ctx context.Context, records []domain.RecencyRecord) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		del, args, err := builder.Delete(table).Where(sq.Eq{"list": r.list}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}
		if _, err := q.Exec(ctx, del, args...); err != nil {
			return postgres.MapError(err, "recent_words", r.list)
		}

		if len(records) == 0 {
			return nil
		}

		ins := builder.Insert(table).Columns("list", "id", "ts", "position")
		for i, rec := range records {
			ins = ins.Values(r.list, rec.ID, rec.Timestamp, i)
		}
		query, args, err := ins.Suffix("ON CONFLICT (list, id) DO NOTHING").ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "recent_words", r.list)
		}
		return nil
	})
}
