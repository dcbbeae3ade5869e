// Package recentjson encodes and decodes the persisted recent-words list.
//
// Two shapes are accepted on read: the current [{"id": "...", "ts": 123}]
// form and the legacy bare list ["cat", "dog"]. Mixed arrays are tolerated;
// elements that are neither a non-empty string nor an object with a
// non-empty string id are skipped. Writes always use the object form.
package recentjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heartmarshall/wordoftheday/internal/domain"
)

type item struct {
	ID string          `json:"id"`
	TS json.RawMessage `json:"ts"`
}

// Decode parses data into recency records, preserving order.
// Empty or whitespace-only input decodes to an empty slice.
func Decode(data []byte) ([]domain.RecencyRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.RecencyRecord{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("recentjson: decode list: %w", err)
	}

	out := make([]domain.RecencyRecord, 0, len(raw))
	for _, el := range raw {
		el = bytes.TrimSpace(el)
		if len(el) == 0 {
			continue
		}

		switch el[0] {
		case '"':
			var id string
			if err := json.Unmarshal(el, &id); err != nil || id == "" {
				continue
			}
			out = append(out, domain.RecencyRecord{ID: id})
		case '{':
			var it item
			if err := json.Unmarshal(el, &it); err != nil || it.ID == "" {
				continue
			}
			out = append(out, domain.RecencyRecord{ID: it.ID, Timestamp: parseTS(it.TS)})
		}
	}

	return out, nil
}

// parseTS accepts a number or a numeric string; anything else is unknown (0).
func parseTS(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		n = json.Number(s)
	}
	if v, err := n.Int64(); err == nil && v > 0 {
		return v
	}
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f > 0 {
		return int64(f)
	}
	return 0
}

// Encode serializes records in the {id, ts} form.
func Encode(records []domain.RecencyRecord) ([]byte, error) {
	if records == nil {
		records = []domain.RecencyRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("recentjson: encode: %w", err)
	}
	return data, nil
}
