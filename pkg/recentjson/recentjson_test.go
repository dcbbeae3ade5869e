package recentjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []domain.RecencyRecord
		wantErr bool
	}{
		{
			name:  "object form",
			input: `[{"id":"cat","ts":1700000000000},{"id":"dog","ts":1600000000000}]`,
			want: []domain.RecencyRecord{
				{ID: "cat", Timestamp: 1700000000000},
				{ID: "dog", Timestamp: 1600000000000},
			},
		},
		{
			name:  "legacy bare ids",
			input: `["cat","dog"]`,
			want:  []domain.RecencyRecord{{ID: "cat"}, {ID: "dog"}},
		},
		{
			name:  "mixed and junk elements",
			input: `["cat", {"id":"dog","ts":"42"}, {"ts":5}, 17, null, "", {"id":"owl"}]`,
			want: []domain.RecencyRecord{
				{ID: "cat"},
				{ID: "dog", Timestamp: 42},
				{ID: "owl"},
			},
		},
		{
			name:  "float timestamp",
			input: `[{"id":"cat","ts":1.7e12}]`,
			want:  []domain.RecencyRecord{{ID: "cat", Timestamp: 1700000000000}},
		},
		{name: "empty input", input: "  ", want: []domain.RecencyRecord{}},
		{name: "empty array", input: "[]", want: []domain.RecencyRecord{}},
		{name: "object instead of array", input: `{"id":"cat"}`, wantErr: true},
		{name: "corrupt", input: `[{"id":`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_AlwaysObjectForm(t *testing.T) {
	t.Parallel()

	legacy, err := Decode([]byte(`["cat"]`))
	require.NoError(t, err)

	data, err := Encode(legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"cat","ts":0}]`, string(data))

	data, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
