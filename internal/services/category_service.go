package services

import (
	"sort"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/preferences"
)

// CategoryService summarizes the known categories: live record counts from
// the feed mirror joined with the user's current preference per category.
type CategoryService struct {
	feed  *FeedService
	prefs *preferences.Store
}

// NewCategoryService builds a category service over the feed mirror.
func NewCategoryService(feed *FeedService, prefs *preferences.Store) *CategoryService {
	return &CategoryService{feed: feed, prefs: prefs}
}

// GetCategories returns every known category with its count and preference.
// sortBy accepts "count", "alpha" or "priority" (the default); order accepts
// "asc" or "desc" (the default).
func (cs *CategoryService) GetCategories(sortBy, order string) models.CategoriesResponse {
	if sortBy == "" {
		sortBy = "priority"
	}
	if order == "" {
		order = "desc"
	}

	counts := make(map[constants.Category]int)
	for _, rec := range cs.feed.Records() {
		counts[rec.CategoryTag()]++
	}
	prefs := cs.prefs.Get()

	summaries := make([]models.CategorySummary, 0, len(constants.KnownCategories))
	for _, category := range constants.KnownCategories {
		entry, ok := prefs.Entries[category]
		if !ok {
			entry = models.PreferenceEntry{Category: category}
		}
		summaries = append(summaries, models.CategorySummary{
			Category: category,
			Label:    constants.Labels[category],
			Count:    counts[category],
			Enabled:  entry.Enabled,
			Priority: entry.Priority,
		})
	}

	cs.sortSummaries(summaries, sortBy, order)

	return models.CategoriesResponse{
		Categories: summaries,
		Total:      len(summaries),
	}
}

func (cs *CategoryService) sortSummaries(summaries []models.CategorySummary, sortBy, order string) {
	sort.SliceStable(summaries, func(i, j int) bool {
		var less bool

		switch sortBy {
		case "alpha":
			less = summaries[i].Label < summaries[j].Label
		case "count":
			less = summaries[i].Count < summaries[j].Count
		default: // "priority"
			less = summaries[i].Priority < summaries[j].Priority
		}

		if order == "desc" {
			return !less
		}
		return less
	})
}
