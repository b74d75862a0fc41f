package aggregate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// KeyFunc maps a region label to the key used for matching.
type KeyFunc func(string) string

// stripMarks builds a fresh chain per call; chained transformers keep
// internal buffers and are not safe to share between goroutines.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeKey case-folds a label, strips diacritics and collapses
// whitespace, so "PRAHA", "Praha" and " praha " all give "praha".
func NormalizeKey(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripMarks(), s)
	if err != nil {
		return s
	}
	return out
}

// CleanText trims a raw value and brings it to NFC. Display names and
// survey words are kept in this form.
func CleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
