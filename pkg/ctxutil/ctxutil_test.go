package ctxutil

import (
	"context"
	"testing"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestWithLanguage_And_LanguageFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithLanguage(context.Background(), "en")

	got, ok := LanguageFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestLanguageFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := LanguageFromCtx(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
	if _, ok := LanguageFromCtx(WithLanguage(context.Background(), "")); ok {
		t.Fatal("expected ok=false for empty language")
	}
}
