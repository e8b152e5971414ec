package registry

import (
	"strings"
	"testing"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/seed"
)

func TestProjectKnownVariants(t *testing.T) {
	tests := []struct {
		name         string
		record       models.Record
		wantTitle    string
		wantSubtitle string
	}{
		{
			name: "health",
			record: &models.HealthRecord{
				RecordBase:   models.RecordBase{Category: constants.CategoryHealth},
				Name:         "Kendua Upazila Health Complex",
				FacilityType: "Upazila Health Complex",
				Address:      "Kendua Sadar",
			},
			wantTitle:    "Kendua Upazila Health Complex",
			wantSubtitle: "Upazila Health Complex, Kendua Sadar",
		},
		{
			name: "transport",
			record: &models.TransportRecord{
				RecordBase:    models.RecordBase{Category: constants.CategoryTransport},
				RouteName:     "Kendua - Mymensingh",
				TransportType: "Bus",
				Schedule:      "Every 30 minutes, 6:00-20:00",
			},
			wantTitle:    "Kendua - Mymensingh",
			wantSubtitle: "Bus, Every 30 minutes, 6:00-20:00",
		},
		{
			name: "announcement strips markdown from the body",
			record: &models.AnnouncementRecord{
				RecordBase: models.RecordBase{Category: constants.CategoryAnnouncements},
				Title:      "Vaccination campaign",
				Body:       "Bring your **NID card** to the nearest center",
			},
			wantTitle:    "Vaccination campaign",
			wantSubtitle: "Bring your NID card to the nearest center",
		},
		{
			name: "empty secondary fields are skipped",
			record: &models.JobRecord{
				RecordBase:   models.RecordBase{Category: constants.CategoryJobs},
				Title:        "Office Assistant",
				Organization: "Upazila Parishad",
			},
			wantTitle:    "Office Assistant",
			wantSubtitle: "Upazila Parishad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.record)
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Subtitle != tt.wantSubtitle {
				t.Errorf("Subtitle = %q, want %q", got.Subtitle, tt.wantSubtitle)
			}
		})
	}
}

// Every known category must project to something other than the fallback
// pair. Seed data covers all categories, so this guards exhaustiveness when a
// category is added.
func TestProjectIsExhaustiveOverKnownCategories(t *testing.T) {
	covered := make(map[constants.Category]bool)
	for _, rec := range seed.Records("Netrokona", "Kendua") {
		covered[rec.CategoryTag()] = true
		if p := Project(rec); p == FallbackProjection {
			t.Errorf("category %s projected to the fallback pair", rec.CategoryTag())
		}
	}
	for _, category := range constants.KnownCategories {
		if !covered[category] {
			t.Errorf("seed data has no record for category %s", category)
		}
	}
}

func TestProjectUnknownTagFallsBack(t *testing.T) {
	rec := &models.UnknownRecord{
		RecordBase: models.RecordBase{
			ID:       "x1",
			Category: "sports",
			District: "Netrokona",
			Upazila:  "Kendua",
		},
	}

	got := Project(rec)
	if got != FallbackProjection {
		t.Errorf("Project(unknown) = %+v, want fallback %+v", got, FallbackProjection)
	}
}

func TestSearchContent(t *testing.T) {
	rec := &models.HealthRecord{
		RecordBase: models.RecordBase{
			Category: constants.CategoryHealth,
			District: "Netrokona",
			Upazila:  "Kendua",
		},
		Name:         "Kendua Upazila Health Complex",
		FacilityType: "Upazila Health Complex",
	}

	content := SearchContent(rec)
	for _, want := range []string{"Kendua Upazila Health Complex", "Netrokona", "Kendua", "health"} {
		if !strings.Contains(content, want) {
			t.Errorf("SearchContent missing %q: %q", want, content)
		}
	}
}
