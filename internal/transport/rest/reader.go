package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/kavita-backend/internal/domain"
	"github.com/heartmarshall/kavita-backend/internal/service/reader"
)

const maxTokenizeBody = 1 << 20

// readerService defines the minimal interface needed by ReaderHandler.
type readerService interface {
	RenderPoem(ctx context.Context, input reader.RenderInput) (*reader.RenderedPoem, error)
	Tokenize(input reader.TokenizeInput) ([]domain.LineGroup, error)
	LookupWord(input reader.LookupInput) (*reader.WordDetails, error)
	Glossary() []domain.GlossaryEntry
}

// ReaderHandler serves the reading view: rendered poems, tokenization and
// the word panel.
type ReaderHandler struct {
	svc readerService
	log *slog.Logger
}

// NewReaderHandler creates a ReaderHandler.
func NewReaderHandler(svc readerService, logger *slog.Logger) *ReaderHandler {
	return &ReaderHandler{svc: svc, log: logger.With("handler", "reader")}
}

type renderResponse struct {
	Slug    string             `json:"slug"`
	Title   string             `json:"title"`
	Excerpt string             `json:"excerpt"`
	Script  domain.ScriptMode  `json:"script"`
	Lang    domain.Language    `json:"lang"`
	Author  *authorResponse    `json:"author"`
	Lines   []domain.LineGroup `json:"lines"`
}

type tokenizeRequest struct {
	Text   string `json:"text"`
	Script string `json:"script"`
}

type tokenizeResponse struct {
	Script domain.ScriptMode  `json:"script"`
	Lines  []domain.LineGroup `json:"lines"`
}

type wordDetailsResponse struct {
	Word      string                `json:"word"`
	Token     string                `json:"token"`
	Found     bool                  `json:"found"`
	Match     string                `json:"match"`
	Meaning   string                `json:"meaning,omitempty"`
	Etymology string                `json:"etymology,omitempty"`
	Example   string                `json:"example,omitempty"`
	Message   string                `json:"message,omitempty"`
	Entry     *domain.GlossaryEntry `json:"entry,omitempty"`
}

// RenderPoem handles GET /api/poems/{slug}/render?script=&lang=.
func (h *ReaderHandler) RenderPoem(w http.ResponseWriter, r *http.Request) {
	script, err := scriptParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	lang := language(r)

	poem, err := h.svc.RenderPoem(r.Context(), reader.RenderInput{
		Slug:   r.PathValue("slug"),
		Script: script,
		Lang:   lang,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		Slug:    poem.Poem.Slug,
		Title:   poem.Title,
		Excerpt: poem.Excerpt,
		Script:  poem.Script,
		Lang:    lang,
		Author:  toAuthorResponse(poem.Author),
		Lines:   poem.Lines,
	})
}

// Tokenize handles POST /api/tokenize. A missing script follows the
// display language.
func (h *ReaderHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTokenizeBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	script := language(r).Script()
	if strings.TrimSpace(req.Script) != "" {
		parsed, err := domain.ParseScriptMode(req.Script)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		script = parsed
	}

	lines, err := h.svc.Tokenize(reader.TokenizeInput{Text: req.Text, Script: script})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenizeResponse{Script: script, Lines: lines})
}

// Lookup handles GET /api/glossary/lookup?word=&script=&lang=. A word that
// cleans to nothing answers 204.
func (h *ReaderHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	script, err := scriptParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	lang := language(r)
	if script == "" {
		script = lang.Script()
	}

	details, err := h.svc.LookupWord(reader.LookupInput{
		Word:   r.URL.Query().Get("word"),
		Script: script,
		Lang:   lang,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wordDetailsResponse{
		Word:      details.Word,
		Token:     details.Token,
		Found:     details.Found,
		Match:     details.Match,
		Meaning:   details.Meaning,
		Etymology: details.Etymology,
		Example:   details.Example,
		Message:   details.Message,
		Entry:     details.Entry,
	})
}

// Glossary handles GET /api/glossary.
func (h *ReaderHandler) Glossary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Glossary())
}
