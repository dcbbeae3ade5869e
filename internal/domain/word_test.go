package domain

import "testing"

func strPtr(s string) *string { return &s }

func TestNewWordRecord(t *testing.T) {
	t.Parallel()

	rec := NewWordRecord("Run", MustLanguageSet("de", "vi"))

	if rec.ID != "run" {
		t.Errorf("ID = %q, want run", rec.ID)
	}
	if rec.Concept != NoDefinition {
		t.Errorf("Concept = %q, want %q", rec.Concept, NoDefinition)
	}
	if len(rec.Translations) != 3 {
		t.Fatalf("len(Translations) = %d, want 3", len(rec.Translations))
	}
	if en, ok := rec.Translation("en"); !ok || en != "Run" {
		t.Errorf("Translation(en) = %q, %v; want Run, true", en, ok)
	}
	for _, code := range []string{"de", "vi"} {
		v, present := rec.Translations[code]
		if !present {
			t.Errorf("key %q missing", code)
		}
		if v != nil {
			t.Errorf("Translations[%q] = %q, want nil", code, *v)
		}
	}
	if rec.Coverage() != 0 {
		t.Errorf("Coverage() = %d, want 0", rec.Coverage())
	}
}

func TestWordRecord_Coverage(t *testing.T) {
	t.Parallel()

	rec := NewWordRecord("cat", MustLanguageSet("de", "vi", "id"))
	rec.Translations["de"] = strPtr("Katze")
	rec.Translations["vi"] = strPtr("mèo")

	if got := rec.Coverage(); got != 2 {
		t.Errorf("Coverage() = %d, want 2", got)
	}
	if _, ok := rec.Translation("id"); ok {
		t.Error("Translation(id) should be absent")
	}
}

func TestRecencyRecord_Time(t *testing.T) {
	t.Parallel()

	if (RecencyRecord{ID: "cat"}).HasTimestamp() {
		t.Error("zero timestamp must be unknown")
	}
	r := RecencyRecord{ID: "cat", Timestamp: 1_700_000_000_000}
	if got := r.Time().UnixMilli(); got != r.Timestamp {
		t.Errorf("Time() = %d, want %d", got, r.Timestamp)
	}
}
