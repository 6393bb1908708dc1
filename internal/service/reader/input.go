package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// RenderInput selects a poem and how to show it. An empty Script follows
// the display language.
type RenderInput struct {
	Slug   string
	Script domain.ScriptMode
	Lang   domain.Language
}

func (i RenderInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}
	if i.Script != "" && !i.Script.IsValid() {
		errs = append(errs, domain.FieldError{Field: "script", Message: "must be devanagari or roman"})
	}
	if i.Lang != "" && !i.Lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "lang", Message: "must be hi or en"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// script returns the requested script or the language default.
func (i RenderInput) script() domain.ScriptMode {
	if i.Script != "" {
		return i.Script
	}
	return i.Lang.Script()
}

// TokenizeInput is arbitrary text to segment.
type TokenizeInput struct {
	Text   string
	Script domain.ScriptMode
}

func (i TokenizeInput) Validate() error {
	var errs []domain.FieldError
	if !i.Script.IsValid() {
		errs = append(errs, domain.FieldError{Field: "script", Message: "must be devanagari or roman"})
	}
	if utf8.RuneCountInString(i.Text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LookupInput is a clicked word as the client saw it, before cleaning.
type LookupInput struct {
	Word   string
	Script domain.ScriptMode
	Lang   domain.Language
}

func (i LookupInput) Validate() error {
	var errs []domain.FieldError
	if !i.Script.IsValid() {
		errs = append(errs, domain.FieldError{Field: "script", Message: "must be devanagari or roman"})
	}
	if i.Lang != "" && !i.Lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "lang", Message: "must be hi or en"})
	}
	if utf8.RuneCountInString(i.Word) > MaxWordLength {
		errs = append(errs, domain.FieldError{Field: "word", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
