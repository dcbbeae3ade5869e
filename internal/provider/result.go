package provider

// SourceResult is what a word source hands to the selection pipeline.
// Exactly one of Candidates or Word is set.
type SourceResult struct {
	// Candidates is an ordered batch of raw headwords to try in turn.
	Candidates []string
	// Difficulty is the quality tier the batch was drawn from (0 = unknown).
	Difficulty int

	// Word is a single agent-selected word, possibly already resolved.
	Word *AgentWord
}

// IsBatch reports whether the result carries a candidate batch.
func (r *SourceResult) IsBatch() bool {
	return r != nil && r.Word == nil
}

// AgentWord is a word chosen by an agent-based tool.
type AgentWord struct {
	Word       string
	ID         *string
	Definition *string
	// Translations maps language code to translated word. A nil map means
	// the agent only proposed the headword and it still needs a lookup.
	Translations map[string]string
}

// IsResolved reports whether the agent already supplied translations.
func (w *AgentWord) IsResolved() bool {
	return w != nil && w.Translations != nil
}
