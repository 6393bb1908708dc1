package gloss

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

func entry(word, roman string) domain.GlossaryEntry {
	return domain.GlossaryEntry{
		SurfaceForm:      word,
		SurfaceFormRoman: roman,
		Meaning:          word + " अर्थ",
		MeaningEn:        roman + " meaning",
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		mode domain.ScriptMode
		want string
	}{
		{raw: "Machchar,", mode: domain.ScriptRoman, want: "machchar"},
		{raw: "\"KAAL_2\"", mode: domain.ScriptRoman, want: "kaal_2"},
		{raw: "--", mode: domain.ScriptRoman, want: ""},
		{raw: "café", mode: domain.ScriptRoman, want: "caf"},
		{raw: "मच्छर,", mode: domain.ScriptDevanagari, want: "मच्छर"},
		{raw: "\"लाल\"", mode: domain.ScriptDevanagari, want: "लाल"},
		{raw: "kal", mode: domain.ScriptDevanagari, want: ""},
		{raw: "\u0928\u093c", mode: domain.ScriptDevanagari, want: "\u0929"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Clean(tt.raw, tt.mode))
		})
	}
}

func TestBuiltin_Scenarios(t *testing.T) {
	t.Parallel()

	g := Builtin()
	require.Equal(t, 19, g.Len())

	t.Run("devanagari exact", func(t *testing.T) {
		m, ok := g.Resolve("मच्छर", domain.ScriptDevanagari)
		require.True(t, ok)
		require.True(t, m.Found())
		assert.Equal(t, MatchExact, m.Kind)
		assert.Equal(t, "A small insect that sucks blood; mosquito", m.Entry.MeaningEn)
	})

	t.Run("roman exact", func(t *testing.T) {
		m, ok := g.Resolve("machchar", domain.ScriptRoman)
		require.True(t, ok)
		assert.Equal(t, MatchExact, m.Kind)
		assert.Equal(t, "machchar", m.Entry.SurfaceFormRoman)
	})

	t.Run("roman token with punctuation and case", func(t *testing.T) {
		m, ok := g.Resolve("Machchar,", domain.ScriptRoman)
		require.True(t, ok)
		assert.Equal(t, "machchar", m.Token)
		assert.Equal(t, "मच्छर", m.Entry.SurfaceForm)
	})

	t.Run("roman not found", func(t *testing.T) {
		m, ok := g.Resolve("maathon", domain.ScriptRoman)
		require.True(t, ok)
		assert.False(t, m.Found())
		assert.Equal(t, MatchNone, m.Kind)
		assert.Equal(t, "maathon", m.Token)
	})

	t.Run("roman inflection fuzzy", func(t *testing.T) {
		m, ok := g.Resolve("kaatnewala", domain.ScriptRoman)
		require.True(t, ok)
		assert.Equal(t, MatchFuzzy, m.Kind)
		assert.Equal(t, "kaatne", m.Entry.SurfaceFormRoman)
	})

	t.Run("short token fuzzy matches first containing entry", func(t *testing.T) {
		m, ok := g.Resolve("a", domain.ScriptRoman)
		require.True(t, ok)
		assert.Equal(t, MatchFuzzy, m.Kind)
		assert.Equal(t, "kal", m.Entry.SurfaceFormRoman)
	})

	t.Run("devanagari plural fuzzy", func(t *testing.T) {
		m, ok := g.Resolve("मच्छरों", domain.ScriptDevanagari)
		require.True(t, ok)
		assert.Equal(t, MatchFuzzy, m.Kind)
		assert.Equal(t, "मच्छर", m.Entry.SurfaceForm)
	})

	t.Run("devanagari stem fuzzy", func(t *testing.T) {
		m, ok := g.Resolve("गाल", domain.ScriptDevanagari)
		require.True(t, ok)
		assert.Equal(t, MatchFuzzy, m.Kind)
		assert.Equal(t, "गालों", m.Entry.SurfaceForm)
	})
}

func TestResolve_EmptyTokenIsNoSelection(t *testing.T) {
	t.Parallel()

	g := Builtin()
	for _, tc := range []struct {
		raw  string
		mode domain.ScriptMode
	}{
		{raw: "", mode: domain.ScriptRoman},
		{raw: "...", mode: domain.ScriptRoman},
		{raw: "", mode: domain.ScriptDevanagari},
		{raw: "kal", mode: domain.ScriptDevanagari},
		{raw: "—", mode: domain.ScriptDevanagari},
	} {
		m, ok := g.Resolve(tc.raw, tc.mode)
		assert.False(t, ok, "raw=%q", tc.raw)
		assert.Nil(t, m.Entry, "raw=%q", tc.raw)
	}

	assert.Nil(t, g.Lookup("", domain.ScriptRoman).Entry)
	assert.Nil(t, g.Lookup("", domain.ScriptDevanagari).Entry)
}

func TestResolve_ExactBeatsEarlierFuzzy(t *testing.T) {
	t.Parallel()

	g := MustNew([]domain.GlossaryEntry{
		entry("लालच", "lalach"),
		entry("लाल", "laal"),
		entry("ला", "la"),
	})

	m, ok := g.Resolve("लाल", domain.ScriptDevanagari)
	require.True(t, ok)
	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, "लाल", m.Entry.SurfaceForm)

	m, _ = g.Resolve("la", domain.ScriptRoman)
	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, "ला", m.Entry.SurfaceForm)
}

func TestResolve_ExactUsesDeclarationOrderAcrossForms(t *testing.T) {
	t.Parallel()

	surfaceFirst := MustNew([]domain.GlossaryEntry{
		entry("FOO", "bar"),
		entry("फ़ू", "foo"),
	})
	m, _ := surfaceFirst.Resolve("foo", domain.ScriptRoman)
	assert.Equal(t, "FOO", m.Entry.SurfaceForm)

	romanFirst := MustNew([]domain.GlossaryEntry{
		entry("फ़ू", "foo"),
		entry("FOO", "bar"),
	})
	m, _ = romanFirst.Resolve("foo", domain.ScriptRoman)
	assert.Equal(t, "फ़ू", m.Entry.SurfaceForm)

	dupes := MustNew([]domain.GlossaryEntry{
		entry("कल", "kal"),
		entry("कल", "kal"),
	})
	m, _ = dupes.Resolve("kal", domain.ScriptRoman)
	assert.Same(t, &dupes.entries[0], m.Entry)
}

func TestResolve_RomanFuzzySkipsEntriesWithoutRomanization(t *testing.T) {
	t.Parallel()

	g := MustNew([]domain.GlossaryEntry{
		entry("प्रेम", ""),
		entry("कल", "kal"),
	})

	m, ok := g.Resolve("kalam", domain.ScriptRoman)
	require.True(t, ok)
	assert.Equal(t, MatchFuzzy, m.Kind)
	assert.Equal(t, "कल", m.Entry.SurfaceForm)

	m, _ = g.Resolve("zzz", domain.ScriptRoman)
	assert.False(t, m.Found())
}

func TestResolve_NormalizesDevanagari(t *testing.T) {
	t.Parallel()

	g := MustNew([]domain.GlossaryEntry{entry("\u0929", "nna")})

	m, ok := g.Resolve("\u0928\u093c", domain.ScriptDevanagari)
	require.True(t, ok)
	assert.Equal(t, MatchExact, m.Kind)
}

func TestResolve_FuzzyContainment(t *testing.T) {
	t.Parallel()

	g := Builtin()
	tokens := map[domain.ScriptMode][]string{
		domain.ScriptRoman:      {"a", "aa", "la", "laalach", "rangeela", "yaadein", "tilak", "x", "mathe", "hath"},
		domain.ScriptDevanagari: {"ल", "लालची", "रंगीला", "यादें", "तिलक", "हाथ", "मा"},
	}
	for mode, list := range tokens {
		for _, tok := range list {
			m := g.Lookup(Clean(tok, mode), mode)
			if m.Kind != MatchFuzzy {
				continue
			}
			form := m.Entry.SurfaceForm
			if mode == domain.ScriptRoman {
				form = strings.ToLower(m.Entry.SurfaceFormRoman)
			}
			assert.True(t, strings.Contains(form, m.Token) || strings.Contains(m.Token, form),
				"mode=%s token=%q form=%q", mode, m.Token, form)
		}
	}
}

func TestResolve_ConcurrentUse(t *testing.T) {
	t.Parallel()

	g := Builtin()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, _ := g.Resolve("मच्छर", domain.ScriptDevanagari)
				if m.Entry == nil || m.Entry.SurfaceFormRoman != "machchar" {
					t.Error("unexpected concurrent result")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New([]domain.GlossaryEntry{
		{SurfaceForm: "कल", Meaning: "समय"},
		{Meaning: "x", MeaningEn: "x"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []domain.FieldError{
		{Field: "entries[0].meaning_en", Message: "required"},
		{Field: "entries[1].word", Message: "required"},
	}, ve.Errors)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	t.Parallel()

	g := MustNew([]domain.GlossaryEntry{entry("कल", "kal")})
	got := g.Entries()
	got[0].SurfaceForm = "बदला"

	m, _ := g.Resolve("कल", domain.ScriptDevanagari)
	assert.Equal(t, "कल", m.Entry.SurfaceForm)
}

func TestMatchKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exact", MatchExact.String())
	assert.Equal(t, "fuzzy", MatchFuzzy.String())
	assert.Equal(t, "none", MatchNone.String())
}
