// Package loader materializes documents from local files. It understands
// plain text and PDF; everything else is skipped.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/domain"
)

// Load expands each path as a glob and reads every matching .txt, .md, and
// .pdf file into a Document. Paths without glob matches are treated as
// literal file names so a missing file surfaces as a read error instead of
// silently vanishing.
func Load(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			doc, ok, err := loadFile(m)
			if err != nil {
				return nil, err
			}
			if ok {
				documents = append(documents, doc)
			}
		}
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("no .txt, .md, or .pdf documents found")
	}
	return documents, nil
}

func loadFile(path string) (domain.Document, bool, error) {
	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Document{}, false, err
		}
		text = string(data)
	case ".pdf":
		extracted, err := extractPDF(path)
		if err != nil {
			return domain.Document{}, false, fmt.Errorf("read pdf %s: %w", path, err)
		}
		text = extracted
	default:
		return domain.Document{}, false, nil
	}
	return domain.Document{
		ID:        uuid.NewString(),
		Name:      filepath.Base(path),
		SizeBytes: int64(len(text)),
		Text:      text,
		CreatedAt: time.Now(),
	}, true, nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}
