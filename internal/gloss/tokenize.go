// Package gloss implements the clickable-word core: script-aware tokenization
// of poem text and resolution of a clicked token against the glossary.
//
// Everything in this package is pure. A *Glossary is immutable after
// construction and safe for concurrent use.
package gloss

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

const (
	devanagariFirst = '\u0900'
	devanagariLast  = '\u097F'
)

func isDevanagari(r rune) bool {
	return r >= devanagariFirst && r <= devanagariLast
}

// isWordByte reports whether b is an ASCII word character [A-Za-z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func hasWordByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if isWordByte(s[i]) {
			return true
		}
	}
	return false
}

// Tokenize splits text into one LineGroup per "\n"-separated line. Blank
// lines become a single non-word break segment. Empty text yields no lines.
//
// Concatenating the segment texts of a group always reproduces the line.
func Tokenize(text string, mode domain.ScriptMode) []domain.LineGroup {
	if text == "" {
		return []domain.LineGroup{}
	}

	lines := strings.Split(text, "\n")
	groups := make([]domain.LineGroup, 0, len(lines))
	for _, line := range lines {
		groups = append(groups, TokenizeLine(line, mode))
	}
	return groups
}

// TokenizeLine segments a single line (which must not contain "\n").
func TokenizeLine(line string, mode domain.ScriptMode) domain.LineGroup {
	if strings.TrimSpace(line) == "" {
		return domain.LineGroup{
			Segments: []domain.Segment{{Text: line}},
			Blank:    true,
		}
	}

	if mode == domain.ScriptRoman {
		return domain.LineGroup{Segments: splitRoman(line)}
	}
	return domain.LineGroup{Segments: splitDevanagari(line)}
}

// splitDevanagari emits maximal runs of Devanagari-block runes as words and
// maximal runs of everything else as non-words. Invalid UTF-8 bytes count as
// non-Devanagari and are preserved as-is.
func splitDevanagari(line string) []domain.Segment {
	var segs []domain.Segment

	start := 0
	inWord := false
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		deva := isDevanagari(r)
		if i == 0 {
			inWord = deva
		} else if deva != inWord {
			segs = append(segs, domain.Segment{Text: line[start:i], IsWord: inWord})
			start = i
			inWord = deva
		}
		i += size
	}
	return append(segs, domain.Segment{Text: line[start:], IsWord: inWord})
}

// splitRoman splits on whitespace runs, keeping them as non-word segments.
// A non-whitespace token is a word only if it has an ASCII word character.
func splitRoman(line string) []domain.Segment {
	var segs []domain.Segment

	start := 0
	inSpace := false
	flush := func(end int) {
		if end == start {
			return
		}
		text := line[start:end]
		segs = append(segs, domain.Segment{Text: text, IsWord: !inSpace && hasWordByte(text)})
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		space := unicode.IsSpace(r)
		if space != inSpace {
			flush(i)
			start = i
			inSpace = space
		}
		i += size
	}
	flush(len(line))
	return segs
}
