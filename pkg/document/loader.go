// Package document loads the regulation PDFs that ground the assistant's
// answers, one Page per source page, and merges them into a single
// retrieval context string.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"npo-hub-be/pkg/textutil"
)

// LoadFile reads one PDF file and returns one Page per source page. Pages
// whose extracted text is empty are dropped before any cleaning is applied.
// When clean is true the remaining pages run through textutil.CleanText.
// A file that cannot be parsed fails the whole call.
func LoadFile(path string, clean bool) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]Page, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d of %s: %w", i, path, err)
		}

		pages = append(pages, Page{Text: text, Source: path, Number: i})
	}

	return filterPages(pages, clean), nil
}

// LoadDirectory runs LoadFile over every file in dir and concatenates the
// results. Filenames are sorted so the merged context is reproducible
// across platforms.
func LoadDirectory(dir string, clean bool) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var pages []Page
	for _, name := range names {
		filePages, err := LoadFile(filepath.Join(dir, name), clean)
		if err != nil {
			return nil, err
		}
		pages = append(pages, filePages...)
	}

	return pages, nil
}

// filterPages drops pages with no extracted text, then optionally cleans
// the survivors. The empty check runs against the raw text: a page that
// only becomes empty after cleaning is kept.
func filterPages(pages []Page, clean bool) []Page {
	filtered := make([]Page, 0, len(pages))
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		if clean {
			page.Text = textutil.CleanText(page.Text)
		}
		filtered = append(filtered, page)
	}
	return filtered
}

// SplitParagraphs concatenates every .txt file in dir and splits the
// result on blank-line boundaries. Non-txt files are skipped (temp files
// from upstream storage share the directory).
func SplitParagraphs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var fullText strings.Builder
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		fullText.WriteString("\n\n")
		fullText.Write(data)
	}

	return strings.Split(fullText.String(), "\n\n"), nil
}
