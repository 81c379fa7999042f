package document

import "strings"

// MergeContext concatenates page texts in sequence order, separated by a
// single space. The result is the immutable retrieval context handed to
// the prompt builder. An empty page slice yields an empty string.
func MergeContext(pages []Page) string {
	if len(pages) == 0 {
		return ""
	}

	var full strings.Builder
	for i, page := range pages {
		if i > 0 {
			full.WriteString(" ")
		}
		full.WriteString(page.Text)
	}
	return full.String()
}
