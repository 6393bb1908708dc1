package domain

import "github.com/google/uuid"

// PoemFilter selects poems from a content provider. Results are always ordered
// by PublishedAt descending. Zero-valued fields do not filter.
type PoemFilter struct {
	AuthorID     *uuid.UUID
	CategoryID   *uuid.UUID
	FeaturedOnly bool
	// Search is a case-insensitive substring matched against both titles,
	// both contents and the author's name.
	Search  string
	Related *Related
	Limit   int
}

// Related selects poems sharing the author or the category of PoemID,
// excluding PoemID itself.
type Related struct {
	PoemID     uuid.UUID
	AuthorID   uuid.UUID
	CategoryID *uuid.UUID
}
