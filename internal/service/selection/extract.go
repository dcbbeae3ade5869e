package selection

import (
	"fmt"

	"github.com/heartmarshall/wordoftheday/internal/domain"
	"github.com/heartmarshall/wordoftheday/internal/provider"
)

// Extract builds the word record for word from the selected sense.
// sense may be nil ("no usable sense"); the record then carries only the
// English headword and the placeholder concept. difficulty is an optional
// label appended to the definition.
func Extract(sense *domain.Sense, word, difficulty string, langs domain.LanguageSet) domain.WordRecord {
	rec := domain.NewWordRecord(word, langs)
	rec.Difficulty = difficulty

	if sense == nil {
		return rec
	}

	if sense.HasDefinition() {
		rec.Concept = annotate(*sense.Definition, difficulty)
	}

	for _, t := range sense.Translations {
		if t.LanguageCode == "" || t.Word == "" {
			continue
		}
		current, configured := rec.Translations[t.LanguageCode]
		if !configured || current != nil {
			continue
		}
		w := t.Word
		rec.Translations[t.LanguageCode] = &w
	}

	return rec
}

// FromAgent normalizes a pre-resolved agent payload into a word record.
// Translations for unconfigured languages are dropped; English always
// mirrors the headword.
func FromAgent(w provider.AgentWord, langs domain.LanguageSet) domain.WordRecord {
	rec := domain.NewWordRecord(w.Word, langs)

	if w.ID != nil && *w.ID != "" {
		rec.ID = *w.ID
	}
	if w.Definition != nil && *w.Definition != "" {
		rec.Concept = *w.Definition
	}

	for code, word := range w.Translations {
		if code == domain.English || word == "" {
			continue
		}
		if _, configured := rec.Translations[code]; !configured {
			continue
		}
		v := word
		rec.Translations[code] = &v
	}

	return rec
}

func annotate(definition, difficulty string) string {
	if difficulty == "" {
		return definition
	}
	return fmt.Sprintf("%s [%s]", definition, difficulty)
}

// DifficultyLabel maps a word-source difficulty tier to its display label.
// Unknown tiers map to "".
func DifficultyLabel(tier int) string {
	switch tier {
	case 1:
		return "easy"
	case 2:
		return "medium-easy"
	case 3:
		return "medium"
	default:
		return ""
	}
}
