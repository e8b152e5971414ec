package constants

import "testing"

func TestKnownCategoriesIsTheClosedSet(t *testing.T) {
	if len(KnownCategories) != 17 {
		t.Fatalf("KnownCategories has %d entries, want 17", len(KnownCategories))
	}

	seen := make(map[Category]bool, len(KnownCategories))
	for _, c := range KnownCategories {
		if seen[c] {
			t.Errorf("category %q listed twice", c)
		}
		seen[c] = true
		if !IsKnown(c) {
			t.Errorf("IsKnown(%q) = false for a listed category", c)
		}
	}
}

func TestIsKnownRejectsForeignTags(t *testing.T) {
	for _, c := range []Category{"", "sports", "Health", "health "} {
		if IsKnown(c) {
			t.Errorf("IsKnown(%q) = true, want false", c)
		}
	}
}

func TestLabelsCoverEveryCategory(t *testing.T) {
	for _, c := range KnownCategories {
		if Labels[c] == "" {
			t.Errorf("category %q has no display label", c)
		}
	}
	if len(Labels) != len(KnownCategories) {
		t.Errorf("Labels has %d entries, want %d", len(Labels), len(KnownCategories))
	}
}
