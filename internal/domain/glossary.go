package domain

// GlossaryEntry is one headword of the poem glossary. Entries are immutable
// once loaded; the JSON names match the glossary files the web client ships.
type GlossaryEntry struct {
	SurfaceForm      string `json:"word"`
	SurfaceFormRoman string `json:"wordRoman,omitempty"`
	Meaning          string `json:"meaning"`
	MeaningEn        string `json:"meaning_en"`
	Etymology        string `json:"etymology"`
	EtymologyEn      string `json:"etymology_en"`
	Example          string `json:"example,omitempty"`
	ExampleEn        string `json:"example_en,omitempty"`
}

// LocalizedMeaning returns the meaning in the given display language.
func (e GlossaryEntry) LocalizedMeaning(lang Language) string {
	if lang == LanguageEnglish {
		return e.MeaningEn
	}
	return e.Meaning
}

// LocalizedEtymology returns the etymology in the given display language.
func (e GlossaryEntry) LocalizedEtymology(lang Language) string {
	if lang == LanguageEnglish {
		return e.EtymologyEn
	}
	return e.Etymology
}

// LocalizedExample returns the usage example in the given display language.
// English falls back to the Hindi example when no translation exists.
func (e GlossaryEntry) LocalizedExample(lang Language) string {
	if lang == LanguageEnglish && e.ExampleEn != "" {
		return e.ExampleEn
	}
	return e.Example
}
