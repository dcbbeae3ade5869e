package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// English is the source language of every headword. It is always part of a
// LanguageSet and is never a translation target.
const English = "en"

// Language is a display language of the word record.
type Language struct {
	Code  string // lowercase tag, e.g. "de"
	Label string // short row label, e.g. "DE"
	Name  string // English display name, e.g. "German"
}

// LanguageSet is the ordered set of configured languages. English is always
// first; the remaining entries keep configuration order.
type LanguageSet struct {
	langs []Language
}

// NewLanguageSet validates codes and builds a LanguageSet. Codes are trimmed
// and lowercased; duplicates and explicit "en" entries are dropped.
// labels optionally overrides the default upper-cased label per code.
func NewLanguageSet(codes []string, labels map[string]string) (LanguageSet, error) {
	set := LanguageSet{langs: []Language{newLanguage(English, labels)}}
	seen := map[string]bool{English: true}

	var errs []FieldError
	for _, raw := range codes {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" || seen[code] {
			continue
		}
		if _, err := language.Parse(code); err != nil {
			errs = append(errs, FieldError{Field: "languages", Message: fmt.Sprintf("invalid code %q", raw)})
			continue
		}
		seen[code] = true
		set.langs = append(set.langs, newLanguage(code, labels))
	}

	if len(errs) > 0 {
		return LanguageSet{}, NewValidationErrors(errs)
	}
	return set, nil
}

// MustLanguageSet is like NewLanguageSet but panics on invalid codes.
func MustLanguageSet(codes ...string) LanguageSet {
	set, err := NewLanguageSet(codes, nil)
	if err != nil {
		panic(err)
	}
	return set
}

func newLanguage(code string, labels map[string]string) Language {
	label := strings.ToUpper(code)
	if l, ok := labels[code]; ok && strings.TrimSpace(l) != "" {
		label = strings.TrimSpace(l)
	}

	name := label
	if tag, err := language.Parse(code); err == nil {
		if n := display.English.Languages().Name(tag); n != "" {
			name = n
		}
	}

	return Language{Code: code, Label: label, Name: name}
}

// All returns every configured language, English first.
func (s LanguageSet) All() []Language {
	out := make([]Language, len(s.langs))
	copy(out, s.langs)
	return out
}

// Codes returns every configured language code, English first.
func (s LanguageSet) Codes() []string {
	codes := make([]string, len(s.langs))
	for i, l := range s.langs {
		codes[i] = l.Code
	}
	return codes
}

// Targets returns the configured translation targets (all codes except English).
func (s LanguageSet) Targets() []string {
	codes := s.Codes()
	if len(codes) == 0 {
		return nil
	}
	return codes[1:]
}

// TargetLanguages returns every configured language except English.
func (s LanguageSet) TargetLanguages() []Language {
	all := s.All()
	if len(all) == 0 {
		return nil
	}
	return all[1:]
}

// Contains reports whether code is configured. English is always configured.
func (s LanguageSet) Contains(code string) bool {
	if code == English {
		return true
	}
	for _, l := range s.langs {
		if l.Code == code {
			return true
		}
	}
	return false
}
