// Package recent implements the file-backed recent-words storage: a single
// JSON document rewritten on every change.
package recent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/pkg/recentjson"
)

// DefaultFileName is the file used when no path is configured.
const DefaultFileName = "recent_words.json"

// Repo persists recent words in a JSON file.
type Repo struct {
	path string
}

// New creates a Repo for path. An empty path uses DefaultFileName in the
// working directory.
func New(path string) *Repo {
	if path == "" {
		path = DefaultFileName
	}
	return &Repo{path: path}
}

// Path returns the file location.
func (r *Repo) Path() string { return r.path }

// Read loads the file. A missing file reads as an empty list.
func (r *Repo) Read(ctx context.Context) ([]domain.RecencyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.RecencyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	records, err := recentjson.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return records, nil
}

// Write replaces the file contents atomically (temp file + rename).
func (r *Repo) Write(ctx context.Context, records []domain.RecencyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := recentjson.Encode(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
