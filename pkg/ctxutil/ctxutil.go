package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	languageKey  ctxKey = "language"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithLanguage stores the reader's display language code ("hi", "en").
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// LanguageFromCtx extracts the display language code.
// Returns an empty string and false if absent.
func LanguageFromCtx(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageKey).(string)
	if !ok || lang == "" {
		return "", false
	}
	return lang, true
}
