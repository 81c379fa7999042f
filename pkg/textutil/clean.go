// Package textutil contains the text normalization helpers used by the
// document pipeline. All functions are pure and total: any input string
// produces an output string, never an error.
package textutil

import (
	"regexp"
	"strings"
)

var (
	urlOrNoisePattern  = regexp.MustCompile(`https?://\S+|www\.\S+|[^a-zA-Z0-9\s\-_*%]`)
	whitespaceRuns     = regexp.MustCompile(`\s+`)
	punctuationOutside = regexp.MustCompile(`[^\w\s.,?!'-]`)
	heavyFilterPattern = regexp.MustCompile(`[^a-zA-Z0-9.\s\n\t:/]`)
)

// CleanText removes URLs and every character outside the
// alphanumeric/whitespace/dash/underscore/asterisk/percent allow-list.
// Idempotent: a cleaned string passes through unchanged.
func CleanText(text string) string {
	return urlOrNoisePattern.ReplaceAllString(text, "")
}

// StandardizeText normalizes formatting: trims the ends, collapses
// whitespace runs to single spaces, fixes two common contraction spacing
// artifacts and strips punctuation outside a small allow-list.
func StandardizeText(text string) string {
	text = strings.TrimSpace(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")

	// Contraction spacing left behind by PDF extraction.
	text = strings.ReplaceAll(text, " ' ", "'")
	text = strings.ReplaceAll(text, " n't ", "n't ")

	return punctuationOutside.ReplaceAllString(text, "")
}

// CleanTextHeavy applies a broader character filter (letters, digits,
// period, whitespace, colon and slash survive; everything else becomes a
// space) and then standardizes the result.
func CleanTextHeavy(text string) string {
	text = heavyFilterPattern.ReplaceAllString(text, " ")
	return StandardizeText(text)
}
