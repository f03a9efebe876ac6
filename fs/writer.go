// Package fs persists knowledgebases as JSON files on disk.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/siteqa"
)

// Ensure Writer implements siteqa.KnowledgebaseWriter at compile time.
var _ siteqa.KnowledgebaseWriter = (*Writer)(nil)

// Writer writes a knowledgebase to a single JSON file with atomic update
// semantics: the document is written to a temporary sibling file and
// renamed into place, so readers never observe a partial knowledgebase.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) tempPath() string {
	return w.path + ".tmp"
}

// WriteKnowledgebase serializes the knowledgebase and replaces the target
// file. Parent directories are created as needed.
func (w *Writer) WriteKnowledgebase(ctx context.Context, kb *siteqa.Knowledgebase) error {
	if kb == nil {
		return siteqa.Errorf(siteqa.EINVALID, "knowledgebase required")
	}
	if err := kb.Validate(); err != nil {
		return err
	}

	// Marshal through a shadow value so a nil item slice serializes as
	// an empty array rather than null.
	items := kb.Items
	if items == nil {
		items = []*siteqa.Item{}
	}
	data, err := json.MarshalIndent(&siteqa.Knowledgebase{Site: kb.Site, Items: items}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(w.tempPath(), data, 0644); err != nil {
		return err
	}

	if err := os.Rename(w.tempPath(), w.path); err != nil {
		os.Remove(w.tempPath())
		return err
	}

	return nil
}
