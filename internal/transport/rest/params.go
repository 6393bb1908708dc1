package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/kavita-backend/internal/domain"
	"github.com/heartmarshall/kavita-backend/pkg/ctxutil"
)

// language returns the display language set by middleware.Language,
// defaulting to Hindi.
func language(r *http.Request) domain.Language {
	code, _ := ctxutil.LanguageFromCtx(r.Context())
	lang, err := domain.ParseLanguage(code)
	if err != nil {
		return domain.LanguageHindi
	}
	return lang
}

// scriptParam parses the "script" query parameter. Empty means "not set".
func scriptParam(r *http.Request) (domain.ScriptMode, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("script"))
	if raw == "" {
		return "", nil
	}
	return domain.ParseScriptMode(raw)
}

func intParam(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func boolParam(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(name, "must be a boolean")
	}
	return b, nil
}
