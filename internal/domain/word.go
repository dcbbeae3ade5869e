package domain

// NoDefinition is the concept shown when no sense carries a definition.
const NoDefinition = "No definition available"

// Candidate is a raw headword proposed by a word source.
type Candidate = string

// DictionaryEntry is the dictionary data for one candidate.
type DictionaryEntry struct {
	Word   string
	Senses []Sense
}

// Sense is one meaning of a dictionary entry.
type Sense struct {
	Definition   *string
	PartOfSpeech *string
	Translations []Translation
}

// HasDefinition reports whether the sense carries a non-empty definition.
func (s Sense) HasDefinition() bool {
	return s.Definition != nil && *s.Definition != ""
}

// Translation is a single translation of a sense.
type Translation struct {
	LanguageCode string
	Word         string
}

// WordRecord is the normalized word of the day handed to renderers.
//
// Translations holds one key per configured language (including English);
// a nil value means "not found".
type WordRecord struct {
	Word         string             `json:"word"`
	ID           string             `json:"id"`
	Concept      string             `json:"concept"`
	Difficulty   string             `json:"difficulty,omitempty"`
	Translations map[string]*string `json:"translations"`
}

// NewWordRecord returns a record with every configured language present and
// absent, except English which is set to word.
func NewWordRecord(word string, langs LanguageSet) WordRecord {
	rec := WordRecord{
		Word:         word,
		ID:           DeriveID(word),
		Concept:      NoDefinition,
		Translations: make(map[string]*string, len(langs.langs)),
	}
	for _, code := range langs.Codes() {
		rec.Translations[code] = nil
	}
	w := word
	rec.Translations[English] = &w
	return rec
}

// Translation returns the translation for code and whether it is present.
func (r WordRecord) Translation(code string) (string, bool) {
	v, ok := r.Translations[code]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Coverage counts the non-English languages with a translation present.
func (r WordRecord) Coverage() int {
	n := 0
	for code, v := range r.Translations {
		if code != English && v != nil {
			n++
		}
	}
	return n
}
