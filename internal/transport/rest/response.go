package rest

import (
	"time"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

type authorResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type categoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEn        string `json:"nameEn"`
	DisplayName   string `json:"displayName"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
	Summary       string `json:"summary"`
}

type poemResponse struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	TitleRoman       string            `json:"titleRoman,omitempty"`
	Content          string            `json:"content"`
	ContentRoman     string            `json:"contentRoman,omitempty"`
	Excerpt          string            `json:"excerpt"`
	ExcerptRoman     string            `json:"excerptRoman,omitempty"`
	FeaturedImageURL *string           `json:"featuredImageUrl,omitempty"`
	IsFeatured       bool              `json:"isFeatured"`
	PublishedAt      time.Time         `json:"publishedAt"`
	Tags             []string          `json:"tags"`
	Author           *authorResponse   `json:"author"`
	Category         *categoryResponse `json:"category,omitempty"`
}

func toAuthorResponse(a *domain.Author) *authorResponse {
	if a == nil {
		return nil
	}
	return &authorResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Slug:      a.Slug,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
	}
}

func toAuthorResponses(authors []domain.Author) []authorResponse {
	out := make([]authorResponse, len(authors))
	for i := range authors {
		out[i] = *toAuthorResponse(&authors[i])
	}
	return out
}

func toCategoryResponse(c *domain.Category, lang domain.Language) *categoryResponse {
	if c == nil {
		return nil
	}
	return &categoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		NameEn:        c.NameEn,
		DisplayName:   c.DisplayName(lang),
		Slug:          c.Slug,
		Description:   c.Description,
		DescriptionEn: c.DescriptionEn,
		Summary:       c.DisplayDescription(lang),
	}
}

func toCategoryResponses(categories []domain.Category, lang domain.Language) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i := range categories {
		out[i] = *toCategoryResponse(&categories[i], lang)
	}
	return out
}

func toPoemResponse(p *domain.PoemWithDetails, lang domain.Language) poemResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return poemResponse{
		ID:               p.ID.String(),
		Slug:             p.Slug,
		Title:            p.Title,
		TitleRoman:       p.TitleRoman,
		Content:          p.Content,
		ContentRoman:     p.ContentRoman,
		Excerpt:          p.Excerpt,
		ExcerptRoman:     p.ExcerptRoman,
		FeaturedImageURL: p.FeaturedImageURL,
		IsFeatured:       p.IsFeatured,
		PublishedAt:      p.PublishedAt,
		Tags:             tags,
		Author:           toAuthorResponse(p.Author),
		Category:         toCategoryResponse(p.Category, lang),
	}
}

func toPoemResponses(poems []domain.PoemWithDetails, lang domain.Language) []poemResponse {
	out := make([]poemResponse, len(poems))
	for i := range poems {
		out[i] = toPoemResponse(&poems[i], lang)
	}
	return out
}
