package reader

import (
	"fmt"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// WordDetails is the content of the word panel. Meaning, Etymology and
// Example are already localized; Message is set only when nothing matched.
type WordDetails struct {
	Word      string
	Token     string
	Found     bool
	Match     string
	Entry     *domain.GlossaryEntry
	Meaning   string
	Etymology string
	Example   string
	Message   string
}

// LookupWord resolves a clicked word. A word that cleans to nothing returns
// domain.ErrNoSelection; a word with no entry is not an error.
func (s *Service) LookupWord(input LookupInput) (*WordDetails, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	lang := input.Lang
	if lang == "" {
		lang = domain.LanguageHindi
	}

	m, ok := s.glossary.Resolve(input.Word, input.Script)
	if !ok {
		return nil, domain.ErrNoSelection
	}

	details := &WordDetails{
		Word:  input.Word,
		Token: m.Token,
		Found: m.Found(),
		Match: m.Kind.String(),
	}
	if !m.Found() {
		details.Message = notFoundMessage(input.Word, lang)
		return details, nil
	}

	entry := *m.Entry
	details.Entry = &entry
	details.Meaning = entry.LocalizedMeaning(lang)
	details.Etymology = entry.LocalizedEtymology(lang)
	// The example section exists only for entries with a Hindi example.
	if entry.Example != "" {
		details.Example = entry.LocalizedExample(lang)
	}
	return details, nil
}

func notFoundMessage(word string, lang domain.Language) string {
	if lang == domain.LanguageEnglish {
		return fmt.Sprintf("No details available for \"%s\"", word)
	}
	return fmt.Sprintf("\"%s\" के लिए कोई विवरण उपलब्ध नहीं है", word)
}
