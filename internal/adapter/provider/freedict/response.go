package freedict

// apiResponse is the body of GET /api/v1/entries/en/{word}?translations=true.
// Entries are grouped by part of speech; the first one is the primary reading.
type apiResponse struct {
	Word    string     `json:"word"`
	Entries []apiEntry `json:"entries"`
}

// apiEntry is a single part-of-speech group.
type apiEntry struct {
	PartOfSpeech string     `json:"partOfSpeech"`
	Senses       []apiSense `json:"senses"`
}

// apiSense is one meaning with its translations.
type apiSense struct {
	Definition   string           `json:"definition"`
	Translations []apiTranslation `json:"translations"`
}

type apiTranslation struct {
	Language apiLanguage `json:"language"`
	Word     string      `json:"word"`
}

type apiLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
