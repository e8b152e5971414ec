package constants

// Category is the discriminant tag of a local information record.
type Category string

// All category tags known to the system. The set is closed: a record carrying
// any other tag is kept but treated as unrenderable.
const (
	CategoryEducation       Category = "education"
	CategoryHealth          Category = "health"
	CategoryPrivateHealth   Category = "private-health"
	CategoryTransport       Category = "transport"
	CategoryAdministrative  Category = "administrative"
	CategoryUtilities       Category = "utilities"
	CategoryWeather         Category = "weather"
	CategoryProjects        Category = "projects"
	CategoryAnnouncements   Category = "announcements"
	CategoryScholarship     Category = "scholarship"
	CategoryLegal           Category = "legal"
	CategoryAgriculture     Category = "agriculture"
	CategoryHousing         Category = "housing"
	CategoryDigitalServices Category = "digital-services"
	CategoryCulture         Category = "culture"
	CategoryEmergencyNews   Category = "emergency-news"
	CategoryJobs            Category = "jobs"
)

// KnownCategories lists every valid category tag.
// When adding a category: add the constant above, append it here, add the
// record variant in internal/models and one projection case in
// internal/registry. Nothing else changes.
var KnownCategories = []Category{
	CategoryEducation,
	CategoryHealth,
	CategoryPrivateHealth,
	CategoryTransport,
	CategoryAdministrative,
	CategoryUtilities,
	CategoryWeather,
	CategoryProjects,
	CategoryAnnouncements,
	CategoryScholarship,
	CategoryLegal,
	CategoryAgriculture,
	CategoryHousing,
	CategoryDigitalServices,
	CategoryCulture,
	CategoryEmergencyNews,
	CategoryJobs,
}

// IsKnown reports whether the tag belongs to the closed category set.
func IsKnown(c Category) bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Labels maps category tags to their display names.
var Labels = map[Category]string{
	CategoryEducation:       "Education",
	CategoryHealth:          "Health",
	CategoryPrivateHealth:   "Private Health",
	CategoryTransport:       "Transport",
	CategoryAdministrative:  "Administrative",
	CategoryUtilities:       "Utilities",
	CategoryWeather:         "Weather",
	CategoryProjects:        "Projects",
	CategoryAnnouncements:   "Announcements",
	CategoryScholarship:     "Scholarship",
	CategoryLegal:           "Legal",
	CategoryAgriculture:     "Agriculture",
	CategoryHousing:         "Housing",
	CategoryDigitalServices: "Digital Services",
	CategoryCulture:         "Culture",
	CategoryEmergencyNews:   "Emergency News",
	CategoryJobs:            "Jobs",
}
