package domain

import (
	"regexp"
	"strings"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparate = regexp.MustCompile(`[\s_-]+`)
)

// Slugify turns a title into a URL slug: lowercase ASCII words joined by
// single hyphens. Non-ASCII letters are dropped, so a pure Devanagari title
// yields "".
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSeparate.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugFor returns the slug for a bilingual title, falling back to the
// romanized title when the primary one has no ASCII letters.
func SlugFor(title, titleRoman string) string {
	if s := Slugify(title); s != "" {
		return s
	}
	return Slugify(titleRoman)
}
