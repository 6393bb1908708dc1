package domain

import (
	"time"

	"github.com/google/uuid"
)

// Author is a poet whose work is published on the site.
type Author struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Bio       string
	AvatarURL *string
	CreatedAt time.Time
}

// Category groups poems by theme. Name and Description are Hindi; the En
// variants are shown to English readers.
type Category struct {
	ID            uuid.UUID
	Name          string
	NameEn        string
	Slug          string
	Description   string
	DescriptionEn string
	CreatedAt     time.Time
}

// DisplayName returns the category name for the display language.
func (c *Category) DisplayName(lang Language) string {
	if lang == LanguageEnglish && c.NameEn != "" {
		return c.NameEn
	}
	return c.Name
}

// DisplayDescription returns the category description for the display language.
func (c *Category) DisplayDescription(lang Language) string {
	if lang == LanguageEnglish && c.DescriptionEn != "" {
		return c.DescriptionEn
	}
	return c.Description
}

// Tag is a free-form label attached to poems through poem_tags.
type Tag struct {
	ID   uuid.UUID
	Name string
}

// Poem is a published poem. Every text field exists in Devanagari and,
// optionally, in romanized form.
type Poem struct {
	ID               uuid.UUID
	Title            string
	TitleRoman       string
	Slug             string
	Content          string
	ContentRoman     string
	Excerpt          string
	ExcerptRoman     string
	AuthorID         uuid.UUID
	CategoryID       *uuid.UUID
	FeaturedImageURL *string
	IsFeatured       bool
	PublishedAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Tags []string
}

// PoemText is the script-specific view of a poem.
type PoemText struct {
	Script  ScriptMode
	Title   string
	Content string
	Excerpt string
}

// Display picks the title, content and excerpt for the requested script.
// A poem without romanized content is shown in Devanagari whatever was
// requested, and the returned Script says so.
func (p *Poem) Display(script ScriptMode) PoemText {
	if script == ScriptRoman && p.ContentRoman != "" {
		title := p.TitleRoman
		if title == "" {
			title = p.Title
		}
		excerpt := p.ExcerptRoman
		if excerpt == "" {
			excerpt = p.Excerpt
		}
		return PoemText{Script: ScriptRoman, Title: title, Content: p.ContentRoman, Excerpt: excerpt}
	}
	return PoemText{Script: ScriptDevanagari, Title: p.Title, Content: p.Content, Excerpt: p.Excerpt}
}

// PoemWithDetails is a poem with its author and (optional) category resolved.
type PoemWithDetails struct {
	Poem
	Author   *Author
	Category *Category
}
