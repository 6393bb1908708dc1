package gloss

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// MatchKind tells how a token was resolved.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchFuzzy
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Match is the result of resolving a token. Entry is nil when Kind is MatchNone.
type Match struct {
	Token string
	Kind  MatchKind
	Entry *domain.GlossaryEntry
}

// Found reports whether the token resolved to an entry.
func (m Match) Found() bool { return m.Entry != nil }

// Glossary is an immutable, ordered set of entries. Declaration order is the
// priority order for both exact and fuzzy matching.
type Glossary struct {
	entries []domain.GlossaryEntry

	// comparison forms, parallel to entries
	surface []string
	roman   []string

	// first index per key
	bySurface      map[string]int
	bySurfaceLower map[string]int
	byRoman        map[string]int
}

// New builds a glossary from entries, keeping their order. Every entry needs
// a surface form and both meanings.
func New(entries []domain.GlossaryEntry) (*Glossary, error) {
	var errs []domain.FieldError
	for i, e := range entries {
		field := fmt.Sprintf("entries[%d]", i)
		if strings.TrimSpace(e.SurfaceForm) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".word", Message: "required"})
		}
		if strings.TrimSpace(e.Meaning) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".meaning", Message: "required"})
		}
		if strings.TrimSpace(e.MeaningEn) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".meaning_en", Message: "required"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	g := &Glossary{
		entries:        make([]domain.GlossaryEntry, len(entries)),
		surface:        make([]string, len(entries)),
		roman:          make([]string, len(entries)),
		bySurface:      make(map[string]int, len(entries)),
		bySurfaceLower: make(map[string]int, len(entries)),
		byRoman:        make(map[string]int, len(entries)),
	}
	copy(g.entries, entries)

	for i, e := range g.entries {
		surface := norm.NFC.String(e.SurfaceForm)
		roman := strings.ToLower(e.SurfaceFormRoman)
		g.surface[i] = surface
		g.roman[i] = roman

		setFirst(g.bySurface, surface, i)
		setFirst(g.bySurfaceLower, strings.ToLower(surface), i)
		if roman != "" {
			setFirst(g.byRoman, roman, i)
		}
	}
	return g, nil
}

// MustNew is New for tables known to be valid at compile time.
func MustNew(entries []domain.GlossaryEntry) *Glossary {
	g, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("gloss: %v", err))
	}
	return g
}

func setFirst(m map[string]int, key string, i int) {
	if _, ok := m[key]; !ok {
		m[key] = i
	}
}

// Len returns the number of entries.
func (g *Glossary) Len() int { return len(g.entries) }

// Entries returns a copy of the entries in declaration order.
func (g *Glossary) Entries() []domain.GlossaryEntry {
	out := make([]domain.GlossaryEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Resolve cleans a clicked token and looks it up. ok is false when the token
// cleans to nothing: that is "no selection", not "not found".
func (g *Glossary) Resolve(raw string, mode domain.ScriptMode) (m Match, ok bool) {
	token := Clean(raw, mode)
	if token == "" {
		return Match{}, false
	}
	return g.Lookup(token, mode), true
}

// Lookup resolves an already cleaned token: exact match first, then the
// first entry whose comparison form and the token contain one another.
// An empty token never matches.
func (g *Glossary) Lookup(token string, mode domain.ScriptMode) Match {
	if token == "" {
		return Match{}
	}
	if i, ok := g.exact(token, mode); ok {
		return Match{Token: token, Kind: MatchExact, Entry: &g.entries[i]}
	}
	if i, ok := g.fuzzy(token, mode); ok {
		return Match{Token: token, Kind: MatchFuzzy, Entry: &g.entries[i]}
	}
	return Match{Token: token, Kind: MatchNone}
}

func (g *Glossary) exact(token string, mode domain.ScriptMode) (int, bool) {
	lower := strings.ToLower(token)
	if mode == domain.ScriptRoman {
		return firstOf(g.byRoman, lower, g.bySurfaceLower, lower)
	}
	return firstOf(g.bySurface, norm.NFC.String(token), g.byRoman, lower)
}

// firstOf returns the lower of the two indexes found, so declaration order
// wins across both keys.
func firstOf(a map[string]int, ka string, b map[string]int, kb string) (int, bool) {
	ia, okA := a[ka]
	ib, okB := b[kb]
	switch {
	case okA && okB:
		return min(ia, ib), true
	case okA:
		return ia, true
	case okB:
		return ib, true
	}
	return 0, false
}

// fuzzy scans in declaration order. Short tokens can match unrelated
// entries; that is accepted.
func (g *Glossary) fuzzy(token string, mode domain.ScriptMode) (int, bool) {
	forms := g.surface
	if mode == domain.ScriptRoman {
		token = strings.ToLower(token)
		forms = g.roman
	} else {
		token = norm.NFC.String(token)
	}

	for i, form := range forms {
		// entries without a romanization have nothing to compare in roman mode
		if form == "" {
			continue
		}
		if strings.Contains(form, token) || strings.Contains(token, form) {
			return i, true
		}
	}
	return 0, false
}
