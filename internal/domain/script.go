package domain

import "strings"

// ScriptMode selects the writing system a poem is displayed and tokenized in.
// It is a per-call parameter and is never persisted.
type ScriptMode string

const (
	ScriptDevanagari ScriptMode = "devanagari"
	ScriptRoman      ScriptMode = "roman"
)

func (m ScriptMode) String() string { return string(m) }

func (m ScriptMode) IsValid() bool {
	switch m {
	case ScriptDevanagari, ScriptRoman:
		return true
	}
	return false
}

// ParseScriptMode accepts the canonical names plus the short aliases used by
// the web client ("hi", "deva", "latin", "en").
func ParseScriptMode(s string) (ScriptMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "devanagari", "deva", "hi":
		return ScriptDevanagari, nil
	case "roman", "latin", "en":
		return ScriptRoman, nil
	}
	return "", NewValidationError("script", "must be devanagari or roman")
}

// Language is the display language of the interface, independent of the
// script the poem text is shown in.
type Language string

const (
	LanguageHindi   Language = "hi"
	LanguageEnglish Language = "en"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish:
		return true
	}
	return false
}

// Script returns the script a reader of this language sees by default:
// English readers get the romanized text.
func (l Language) Script() ScriptMode {
	if l == LanguageEnglish {
		return ScriptRoman
	}
	return ScriptDevanagari
}

// ParseLanguage parses a display language. Empty input means Hindi.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hi", "hindi":
		return LanguageHindi, nil
	case "en", "english":
		return LanguageEnglish, nil
	}
	return "", NewValidationError("lang", "must be hi or en")
}
