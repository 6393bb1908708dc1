package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// ListPoemsInput holds the poem listing filters. Slugs are resolved to IDs
// by the service.
type ListPoemsInput struct {
	Search       string
	CategorySlug string
	AuthorSlug   string
	FeaturedOnly bool
	Limit        int // 0 = default
}

// Validate checks all fields and collects all errors.
func (i ListPoemsInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.Search)) > MaxSearchLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: "max 200 characters"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
