package static

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedDay(yday int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, yday-1)
	}
}

func TestProvider_BuiltInList(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(newTestLogger(), WithClock(fixedDay(1)))
	require.NoError(t, err)
	require.Equal(t, 30, p.Len())

	res, err := p.Fetch(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, res.Word)
	assert.Equal(t, "to adapt", res.Word.Word)
	assert.Equal(t, "sich anpassen", res.Word.Translations["de"])
	assert.True(t, res.Word.IsResolved())
}

func TestProvider_RotatesByDayOfYear(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(newTestLogger(), WithClock(fixedDay(32)))
	require.NoError(t, err)

	res, err := p.Fetch(context.Background(), nil)
	require.NoError(t, err)
	// (32-1) % 30 == 1
	assert.Equal(t, "to postpone", res.Word.Word)
}

func writeList(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestProvider_SkipsRecentEntries(t *testing.T) {
	t.Parallel()

	path := writeList(t, `[
		{"word": "Alpha", "translations": {"de": "a"}},
		{"word": "beta", "id": "b-1", "translations": {"de": "b"}},
		{"word": "gamma", "translations": {"de": "c"}}
	]`)
	p, err := NewProviderFromFile(newTestLogger(), path, WithClock(fixedDay(1)))
	require.NoError(t, err)

	res, err := p.Fetch(context.Background(), []string{"alpha", "b-1"})
	require.NoError(t, err)
	assert.Equal(t, "gamma", res.Word.Word)

	// Everything recent: fall back to today's entry.
	res, err = p.Fetch(context.Background(), []string{"alpha", "b-1", "gamma"})
	require.NoError(t, err)
	assert.Equal(t, "Alpha", res.Word.Word)
}

func TestProvider_EntryWithoutTranslationsIsResolved(t *testing.T) {
	t.Parallel()

	path := writeList(t, `[{"word": "solo"}]`)
	p, err := NewProviderFromFile(newTestLogger(), path)
	require.NoError(t, err)

	res, err := p.Fetch(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.Word.IsResolved())
}

func TestProvider_InvalidLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty", `[]`},
		{"not an array", `{"word":"x"}`},
		{"entry without word", `[{"definition":"x"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewProviderFromFile(newTestLogger(), writeList(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := NewProviderFromFile(newTestLogger(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
