package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/kavita-backend/pkg/ctxutil"
)

// Language stores the reader's display language in the request context.
// The "lang" query parameter wins over Accept-Language; only "hi" and "en"
// are recognized, anything else leaves the context untouched.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := pickLanguage(r.URL.Query().Get("lang"))
		if lang == "" {
			lang = acceptLanguage(r.Header.Get("Accept-Language"))
		}
		if lang != "" {
			r = r.WithContext(ctxutil.WithLanguage(r.Context(), lang))
		}
		next.ServeHTTP(w, r)
	})
}

func pickLanguage(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "hi", "en":
		return s
	}
	return ""
}

// acceptLanguage returns the first supported tag in header order. Quality
// values are ignored.
func acceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if lang := pickLanguage(tag); lang != "" {
			return lang
		}
	}
	return ""
}
