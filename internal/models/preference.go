package models

import "github.com/amarupazila/app-local-info/internal/constants"

// PreferenceEntry is the per-category user setting controlling inclusion and
// weight in ranking. Priority is 0-100.
type PreferenceEntry struct {
	Category constants.Category `json:"category"`
	Enabled  bool               `json:"enabled"`
	Priority int                `json:"priority" validate:"min=0,max=100"`
}

// DefaultPriority is used when a preference is created without an explicit
// priority.
const DefaultPriority = 50

// PreferenceSet is a snapshot of all preference entries plus the algorithm
// mix. Entries are keyed by category; at most one entry per category.
type PreferenceSet struct {
	Entries map[constants.Category]PreferenceEntry `json:"entries"`
	// AlgorithmMix blends preference-driven ordering against randomized
	// ordering: 100 is preference-only, 0 is pure shuffle. Callers must stay
	// within 0-100; the store does not clamp.
	AlgorithmMix int `json:"algorithm_mix"`
}

// BasePriority returns the ranking base priority for a category: the entry's
// priority when the category is enabled, 0 when disabled or absent.
func (p PreferenceSet) BasePriority(category constants.Category) int {
	entry, ok := p.Entries[category]
	if !ok || !entry.Enabled {
		return 0
	}
	return entry.Priority
}

// DefaultPreferences seeds an entry for every known category, enabled at the
// default priority, with a balanced algorithm mix.
func DefaultPreferences() PreferenceSet {
	entries := make(map[constants.Category]PreferenceEntry, len(constants.KnownCategories))
	for _, category := range constants.KnownCategories {
		entries[category] = PreferenceEntry{
			Category: category,
			Enabled:  true,
			Priority: DefaultPriority,
		}
	}
	return PreferenceSet{
		Entries:      entries,
		AlgorithmMix: 50,
	}
}
