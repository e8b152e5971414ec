// Package registry maps record variants to their display projection. It is
// the single place that knows which fields of each category are the primary
// and secondary display lines.
package registry

import (
	"strings"

	"github.com/amarupazila/app-local-info/internal/models"
	"github.com/amarupazila/app-local-info/internal/utils"
)

// Projection is the {title, subtitle} pair the display layer renders for a
// record.
type Projection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// FallbackProjection is returned for any record whose variant is not
// recognized. Project never fails; the worst case is this pair.
var FallbackProjection = Projection{Title: "Unknown", Subtitle: "Unknown"}

const subtitleExcerptLen = 120

// Project turns a record into its display pair. Total over the category set:
// every known variant has exactly one case here, anything else gets the
// fallback. Adding a category means adding one case.
func Project(rec models.Record) Projection {
	switch r := rec.(type) {
	case *models.EducationRecord:
		return Projection{Title: r.Name, Subtitle: joinParts(r.InstitutionType, r.Address)}
	case *models.HealthRecord:
		return Projection{Title: r.Name, Subtitle: joinParts(r.FacilityType, r.Address)}
	case *models.PrivateHealthRecord:
		return Projection{Title: r.Name, Subtitle: joinParts(r.Specialty, r.Chamber)}
	case *models.TransportRecord:
		return Projection{Title: r.RouteName, Subtitle: joinParts(r.TransportType, r.Schedule)}
	case *models.AdministrativeRecord:
		return Projection{Title: r.OfficeName, Subtitle: joinParts(r.OfficerName, r.Designation)}
	case *models.UtilitiesRecord:
		return Projection{Title: r.ProviderName, Subtitle: joinParts(r.ServiceType, r.Hotline)}
	case *models.WeatherRecord:
		return Projection{Title: r.Summary, Subtitle: joinParts(r.Temperature, r.Warning)}
	case *models.ProjectRecord:
		return Projection{Title: r.ProjectName, Subtitle: joinParts(r.ImplementingAgency, r.Status)}
	case *models.AnnouncementRecord:
		return Projection{Title: r.Title, Subtitle: utils.Excerpt(utils.StripMarkdown(r.Body), subtitleExcerptLen)}
	case *models.ScholarshipRecord:
		return Projection{Title: r.Title, Subtitle: joinParts(r.Provider, r.Deadline)}
	case *models.LegalRecord:
		return Projection{Title: r.ServiceName, Subtitle: joinParts(r.Provider, r.Phone)}
	case *models.AgricultureRecord:
		return Projection{Title: r.Topic, Subtitle: utils.Excerpt(r.Advice, subtitleExcerptLen)}
	case *models.HousingRecord:
		return Projection{Title: r.Title, Subtitle: joinParts(r.PropertyType, r.Rent)}
	case *models.DigitalServiceRecord:
		return Projection{Title: r.ServiceName, Subtitle: utils.Excerpt(r.Description, subtitleExcerptLen)}
	case *models.CultureRecord:
		return Projection{Title: r.Name, Subtitle: joinParts(r.Kind, r.Venue)}
	case *models.EmergencyNewsRecord:
		return Projection{Title: r.Headline, Subtitle: utils.Excerpt(utils.StripMarkdown(r.Details), subtitleExcerptLen)}
	case *models.JobRecord:
		return Projection{Title: r.Title, Subtitle: joinParts(r.Organization, r.Deadline)}
	default:
		return FallbackProjection
	}
}

// SearchContent builds the flat text indexed for keyword search: the display
// pair plus location scoping. Unknown variants still index their base fields.
func SearchContent(rec models.Record) string {
	p := Project(rec)
	district, upazila := rec.Location()

	parts := []string{}
	if p != FallbackProjection {
		parts = append(parts, p.Title, p.Subtitle)
	}
	parts = append(parts, district, upazila, string(rec.CategoryTag()))

	kept := parts[:0:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

// joinParts joins the non-empty parts with a comma.
func joinParts(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
