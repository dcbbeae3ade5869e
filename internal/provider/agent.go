package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAgentWord is returned when an agent payload fails validation.
var ErrMalformedAgentWord = errors.New("malformed agent word")

// agentPayload is the JSON object agents return:
// {"word": "...", "id": "...", "definition": "...", "translations": {"de": "..."}}.
type agentPayload struct {
	Word         *string            `json:"word"`
	ID           json.RawMessage    `json:"id"`
	Definition   *string            `json:"definition"`
	Translations map[string]*string `json:"translations"`
}

// DecodeAgentWord validates and converts an agent JSON payload.
// word is required. id may be a string or a number. Null or blank
// translations are dropped; codes are lowercased.
func DecodeAgentWord(data []byte) (*AgentWord, error) {
	var p agentPayload
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAgentWord, err)
	}

	if p.Word == nil || strings.TrimSpace(*p.Word) == "" {
		return nil, fmt.Errorf("%w: word is required", ErrMalformedAgentWord)
	}

	w := &AgentWord{Word: strings.TrimSpace(*p.Word)}

	id, err := decodeID(p.ID)
	if err != nil {
		return nil, err
	}
	w.ID = id

	if p.Definition != nil {
		if def := strings.TrimSpace(*p.Definition); def != "" {
			w.Definition = &def
		}
	}

	if p.Translations != nil {
		w.Translations = make(map[string]string, len(p.Translations))
		for code, tr := range p.Translations {
			if tr == nil || strings.TrimSpace(*tr) == "" {
				continue
			}
			w.Translations[strings.ToLower(strings.TrimSpace(code))] = *tr
		}
	}

	return w, nil
}

func decodeID(raw json.RawMessage) (*string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return &s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s := n.String()
		return &s, nil
	}

	return nil, fmt.Errorf("%w: id must be a string or a number", ErrMalformedAgentWord)
}
