package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugBaseLength = 40
	shortIDLength     = 8
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// NewRecordID builds a readable unique id from a record's display title.
// Format: {kebab-case-title}-{short-uuid}. A title that normalizes to nothing
// (for example a fully Bangla title) yields just the short uuid.
func NewRecordID(title string) string {
	shortID := strings.ReplaceAll(uuid.NewString(), "-", "")[:shortIDLength]

	slug := normalizeToSlug(title)
	if slug == "" {
		return shortID
	}
	return slug + "-" + shortID
}

// normalizeToSlug converts text to kebab-case ASCII.
func normalizeToSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, text)
	normalized = strings.ToLower(normalized)

	slug := nonSlugChars.ReplaceAllString(normalized, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugBaseLength {
		slug = slug[:maxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}
