package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds a location or category string for comparison: diacritics
// removed, lowercased, whitespace collapsed. Transliterated place names vary
// in spelling ("Netrokona" / "Netrakona"), so matching always goes through
// this fold on both sides.
func NormalizeKey(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)

	normalized = strings.ToLower(normalized)
	return strings.Join(strings.Fields(normalized), " ")
}

// SameKey reports whether two strings are equal under NormalizeKey.
func SameKey(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}
