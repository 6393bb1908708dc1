package catalog

import "github.com/heartmarshall/kavita-backend/internal/domain"

// HomePage is the landing page content.
type HomePage struct {
	Featured []domain.PoemWithDetails
	Recent   []domain.PoemWithDetails
}

// PoemPage is a single poem with poems by the same author or in the same
// category.
type PoemPage struct {
	Poem    domain.PoemWithDetails
	Related []domain.PoemWithDetails
}

// AuthorProfile is an author with their poems, newest first.
type AuthorProfile struct {
	Author domain.Author
	Poems  []domain.PoemWithDetails
}

// CategoryPage is a category with its poems, newest first.
type CategoryPage struct {
	Category domain.Category
	Poems    []domain.PoemWithDetails
}
