package gloss

import (
	"encoding/json"
	"fmt"

	"github.com/hack-pad/hackpadfs"

	"github.com/heartmarshall/kavita-backend/internal/domain"
)

// Load reads a glossary from a JSON array of entries stored at path in fsys.
// Field names follow the web client's dictionary ("word", "wordRoman",
// "meaning", "meaning_en", ...). File order becomes match priority.
func Load(fsys hackpadfs.FS, path string) (*Glossary, error) {
	content, err := hackpadfs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read glossary %s: %w", path, err)
	}

	var entries []domain.GlossaryEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("decode glossary %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("glossary %s: %w", path, domain.NewValidationError("entries", "must not be empty"))
	}

	g, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("glossary %s: %w", path, err)
	}
	return g, nil
}

// Save writes the glossary entries to path in fsys in the format Load reads.
func Save(fsys hackpadfs.FS, path string, g *Glossary) error {
	content, err := json.MarshalIndent(g.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode glossary: %w", err)
	}
	if err := hackpadfs.WriteFullFile(fsys, path, content, 0o644); err != nil {
		return fmt.Errorf("write glossary %s: %w", path, err)
	}
	return nil
}
