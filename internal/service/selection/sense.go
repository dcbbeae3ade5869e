package selection

import (
	"github.com/heartmarshall/wordoftheday/internal/domain"
)

// targetWeight makes a single target-language hit outrank any number of
// non-target translations.
const targetWeight = 100

// SelectSense picks the sense with the best translation coverage for targets.
//
// A sense qualifies when it has a definition and at least one translation.
// Qualifying senses score targetWeight*targetHits + totalTranslations; the
// strictly highest score wins and ties keep the earlier sense. Without a
// qualifying sense the first sense is returned for its definition.
// The boolean is false only when senses is empty.
func SelectSense(senses []domain.Sense, targets []string) (*domain.Sense, bool) {
	if len(senses) == 0 {
		return nil, false
	}

	targetSet := make(map[string]struct{}, len(targets))
	for _, code := range targets {
		if code != domain.English {
			targetSet[code] = struct{}{}
		}
	}

	best := -1
	bestScore := -1
	for i, s := range senses {
		if !s.HasDefinition() || len(s.Translations) == 0 {
			continue
		}
		if score := scoreSense(s, targetSet); score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 {
		return &senses[0], true
	}
	return &senses[best], true
}

func scoreSense(s domain.Sense, targets map[string]struct{}) int {
	hits := 0
	for _, t := range s.Translations {
		if _, ok := targets[t.LanguageCode]; ok {
			hits++
		}
	}
	return targetWeight*hits + len(s.Translations)
}
