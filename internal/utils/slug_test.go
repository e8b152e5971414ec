package utils

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewRecordID(t *testing.T) {
	idSuffix := regexp.MustCompile(`-[0-9a-f]{8}$`)

	t.Run("kebab case with short id suffix", func(t *testing.T) {
		id := NewRecordID("Kendua Upazila Health Complex")
		if !strings.HasPrefix(id, "kendua-upazila-health-complex-") {
			t.Errorf("NewRecordID prefix = %q", id)
		}
		if !idSuffix.MatchString(id) {
			t.Errorf("NewRecordID(%q) missing short id suffix", id)
		}
	})

	t.Run("diacritics are folded", func(t *testing.T) {
		id := NewRecordID("Bárhatta Bazar")
		if !strings.HasPrefix(id, "barhatta-bazar-") {
			t.Errorf("NewRecordID = %q", id)
		}
	})

	t.Run("empty title yields bare short id", func(t *testing.T) {
		id := NewRecordID("")
		if len(id) != shortIDLength {
			t.Errorf("NewRecordID(\"\") = %q, want %d hex chars", id, shortIDLength)
		}
	})

	t.Run("long titles are truncated at a word boundary", func(t *testing.T) {
		id := NewRecordID("Very Long Government Office Name That Keeps Going And Going")
		base := idSuffix.ReplaceAllString(id, "")
		if len(base) > maxSlugBaseLength {
			t.Errorf("slug base %q longer than %d", base, maxSlugBaseLength)
		}
		if strings.HasSuffix(base, "-") {
			t.Errorf("slug base %q has trailing hyphen", base)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := NewRecordID("same title")
		b := NewRecordID("same title")
		if a == b {
			t.Errorf("two generated ids collided: %q", a)
		}
	})
}
