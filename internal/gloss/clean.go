package gloss

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// Clean reduces a clicked token to its lookup form. Roman tokens keep only
// ASCII word characters, lowercased. Devanagari tokens keep only runes of the
// Devanagari block, in NFC. An empty result means nothing was selected.
func Clean(raw string, mode domain.ScriptMode) string {
	if mode == domain.ScriptRoman {
		return cleanRoman(raw)
	}
	return cleanDevanagari(raw)
}

func cleanRoman(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if !isWordByte(c) {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func cleanDevanagari(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if isDevanagari(r) {
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}
