package reader

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kavita-backend/internal/domain"
	"github.com/heartmarshall/kavita-backend/internal/gloss"
)

// RenderedPoem is a poem ready for the reading view. Script is the script
// actually used, which is Devanagari when no romanization exists.
type RenderedPoem struct {
	Poem    domain.Poem
	Author  *domain.Author
	Script  domain.ScriptMode
	Title   string
	Excerpt string
	Lines   []domain.LineGroup
}

// RenderPoem loads the poem by slug and splits its text for the requested
// script. Token streams are cached per poem version and script and shared
// between callers; treat Lines as read-only.
func (s *Service) RenderPoem(ctx context.Context, input RenderInput) (*RenderedPoem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	poem, err := s.poems.GetPoemBySlug(ctx, strings.TrimSpace(input.Slug))
	if err != nil {
		return nil, fmt.Errorf("get poem: %w", err)
	}

	text := poem.Display(input.script())
	key := cacheKey(poem, text.Script)
	lines, hit := s.cache.Get(key)
	if !hit {
		lines = gloss.Tokenize(text.Content, text.Script)
		s.cache.Add(key, lines)
	}

	author, err := s.author(ctx, poem.AuthorID)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "poem rendered",
		slog.String("slug", poem.Slug),
		slog.String("script", text.Script.String()),
		slog.Bool("cached", hit),
	)

	return &RenderedPoem{
		Poem:    *poem,
		Author:  author,
		Script:  text.Script,
		Title:   text.Title,
		Excerpt: text.Excerpt,
		Lines:   lines,
	}, nil
}

// Tokenize splits arbitrary text into clickable segments.
func (s *Service) Tokenize(input TokenizeInput) ([]domain.LineGroup, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return gloss.Tokenize(input.Text, input.Script), nil
}

func (s *Service) author(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	authors, err := s.poems.GetAuthorsByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], nil
		}
	}
	s.log.WarnContext(ctx, "poem author missing", slog.String("author_id", id.String()))
	return nil, nil
}

func cacheKey(p *domain.Poem, script domain.ScriptMode) string {
	return p.ID.String() + "|" + strconv.FormatInt(p.UpdatedAt.UnixNano(), 10) + "|" + string(script)
}
