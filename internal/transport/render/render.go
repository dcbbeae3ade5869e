// Package render turns a selected word into the shapes shown to users: text
// rows for the terminal and a JSON view for the HTTP API.
package render

import (
	"fmt"
	"io"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/service/selection"
)

// NotFound is shown in place of a missing translation.
const NotFound = "not found"

// WordView is the JSON representation of a word of the day.
type WordView struct {
	Word         string            `json:"word"`
	ID           string            `json:"id"`
	Concept      string            `json:"concept"`
	Difficulty   string            `json:"difficulty,omitempty"`
	Degraded     bool              `json:"degraded"`
	Translations []TranslationView `json:"translations"`
}

// TranslationView is one language row. Word is null when the translation
// was not found.
type TranslationView struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Name  string  `json:"name"`
	Word  *string `json:"word"`
}

// NewWordView builds the view with one row per configured language, in
// configuration order.
func NewWordView(res *selection.Result, langs domain.LanguageSet) WordView {
	rec := res.Record
	view := WordView{
		Word:         rec.Word,
		ID:           rec.ID,
		Concept:      rec.Concept,
		Difficulty:   rec.Difficulty,
		Degraded:     res.Degraded,
		Translations: make([]TranslationView, 0, len(langs.Codes())),
	}
	for _, l := range langs.All() {
		view.Translations = append(view.Translations, TranslationView{
			Code:  l.Code,
			Label: l.Label,
			Name:  l.Name,
			Word:  rec.Translations[l.Code],
		})
	}
	return view
}

// Text writes the concept line followed by one "LABEL: word" row per
// language. compact omits the concept line.
func Text(w io.Writer, rec domain.WordRecord, langs domain.LanguageSet, compact bool) error {
	if !compact {
		if _, err := fmt.Fprintf(w, "%s\n\n", rec.Concept); err != nil {
			return err
		}
	}
	for _, l := range langs.All() {
		value, ok := rec.Translation(l.Code)
		if !ok {
			value = NotFound
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.Label, value); err != nil {
			return err
		}
	}
	return nil
}
