// Package export renders an ordered entry list to a markdown document.
// It is a pure consumer of the read API; it never touches the store.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quilljournal/quill/internal/models"
)

// WriteMarkdown renders the entries to w as a markdown document, in the
// order given (normally entry date descending from the read API).
func WriteMarkdown(w io.Writer, entries []models.Entry) error {
	if _, err := fmt.Fprintf(w, "# Journal Export\n\n%d entries\n", len(entries)); err != nil {
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "\n---\n\n## %s — %s\n\n", e.EntryDate, e.Title); err != nil {
			return err
		}

		moods := make([]string, 0, 3)
		for _, m := range e.Moods() {
			moods = append(moods, fmt.Sprintf("%s (%s)", m.Name, m.Category))
		}
		if _, err := fmt.Fprintf(w, "*Mood: %s*\n", strings.Join(moods, ", ")); err != nil {
			return err
		}
		if len(e.Tags) > 0 {
			if _, err := fmt.Fprintf(w, "*Tags: %s*\n", strings.Join(e.Tags, ", ")); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "\n%s\n\n*%d words*\n", e.Content, e.WordCount); err != nil {
			return err
		}
	}

	return nil
}

// WriteMarkdownFile renders the entries to a new file at path. Refuses to
// overwrite an existing file.
func WriteMarkdownFile(path string, entries []models.Entry) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteMarkdown(f, entries); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return f.Sync()
}
