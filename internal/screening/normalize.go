package screening

import (
	"regexp"
	"strings"
)

// Normalization pipeline, applied in order: lowercase, multi-word
// abbreviations (before punctuation stripping would split them), punctuation
// to spaces, whole-token abbreviations, whitespace collapse. Total and
// deterministic over any input; no locale dependence.

var (
	poBoxPattern    = regexp.MustCompile(`\bp\.?\s*o\.?\s*box\b`)
	punctuationRuns = regexp.MustCompile(`[()\[\].,;:!@#$%^&*\-_/\\'"]+`)
)

// tokenAbbreviations maps whole tokens after punctuation stripping. Keys must
// already be normalized (lowercase, no punctuation).
var tokenAbbreviations = map[string]string{
	"st":   "street",
	"str":  "street",
	"rd":   "road",
	"ave":  "avenue",
	"av":   "avenue",
	"blvd": "boulevard",
	"ln":   "lane",
}

// Normalize returns the canonical single-spaced lowercase form of text.
// Punctuation becomes a word boundary, so "Al-Hamed" normalizes to
// "al hamed" rather than "alhamed".
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = poBoxPattern.ReplaceAllString(s, "po box")
	s = punctuationRuns.ReplaceAllString(s, " ")

	fields := strings.Fields(s)
	for i, f := range fields {
		if full, ok := tokenAbbreviations[f]; ok {
			fields[i] = full
		}
	}

	return strings.Join(fields, " ")
}

// Tokens splits text into normalized word tokens. Empty input yields nil.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
