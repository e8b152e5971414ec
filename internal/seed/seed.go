// Package seed holds the built-in demo records used when the remote
// collection is empty or still being provisioned. The portal must never
// render an empty feed on a cold backend.
package seed

import (
	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
)

// Records returns one demo record per known category, scoped to the given
// district and upazila. IDs are fixed so repeated seeding upserts instead of
// duplicating.
func Records(district, upazila string) []models.Record {
	base := func(id string, category constants.Category) models.RecordBase {
		return models.RecordBase{
			ID:       id,
			Category: category,
			District: district,
			Upazila:  upazila,
		}
	}

	return []models.Record{
		&models.EducationRecord{
			RecordBase:      base("seed-education-1", constants.CategoryEducation),
			Name:            "Kendua Govt Pilot High School",
			InstitutionType: "Secondary School",
			Address:         "College Road, Kendua",
			Phone:           "01700-000001",
		},
		&models.HealthRecord{
			RecordBase:   base("seed-health-1", constants.CategoryHealth),
			Name:         "Upazila Health Complex",
			FacilityType: "Public Hospital",
			Address:      "Hospital Road",
			Phone:        "01700-000002",
			Services:     []string{"Emergency", "Outdoor", "Maternity"},
		},
		&models.PrivateHealthRecord{
			RecordBase:    base("seed-private-health-1", constants.CategoryPrivateHealth),
			Name:          "Dr. Rahima Khatun",
			Specialty:     "Medicine",
			Chamber:       "Seba Diagnostic Center",
			Phone:         "01700-000003",
			VisitingHours: "17:00-21:00, Sat-Thu",
		},
		&models.TransportRecord{
			RecordBase:    base("seed-transport-1", constants.CategoryTransport),
			RouteName:     "Kendua - Mymensingh",
			TransportType: "Bus",
			Departure:     "Kendua Bus Stand",
			Destination:   "Mymensingh Bridge Point",
			Schedule:      "Every 30 minutes, 6:00-20:00",
			Fare:          "120 BDT",
		},
		&models.AdministrativeRecord{
			RecordBase:  base("seed-administrative-1", constants.CategoryAdministrative),
			OfficeName:  "Upazila Nirbahi Officer's Office",
			OfficerName: "Md. Asaduzzaman",
			Designation: "UNO",
			Phone:       "01700-000004",
			Email:       "unokendua@mopa.gov.bd",
		},
		&models.UtilitiesRecord{
			RecordBase:    base("seed-utilities-1", constants.CategoryUtilities),
			ProviderName:  "Palli Bidyut Samity",
			ServiceType:   "Electricity",
			Hotline:       "16899",
			OfficeAddress: "Sub-zonal Office, Kendua",
		},
		&models.WeatherRecord{
			RecordBase:  base("seed-weather-1", constants.CategoryWeather),
			Summary:     "Partly cloudy with chance of rain",
			Temperature: "31°C",
			Humidity:    "78%",
		},
		&models.ProjectRecord{
			RecordBase:         base("seed-projects-1", constants.CategoryProjects),
			ProjectName:        "Rajur Bazar Bridge Reconstruction",
			ImplementingAgency: "LGED",
			Budget:             "4.2 crore BDT",
			Status:             "Ongoing",
			CompletionDate:     "2027-06-30",
		},
		&models.AnnouncementRecord{
			RecordBase: base("seed-announcements-1", constants.CategoryAnnouncements),
			Title:      "Birth registration camp",
			Body:       "A **free** birth registration camp will run at every union parishad office next week.",
			IssuedBy:   "Upazila Administration",
		},
		&models.ScholarshipRecord{
			RecordBase:       base("seed-scholarship-1", constants.CategoryScholarship),
			Title:            "Primary Education Stipend",
			Provider:         "Directorate of Primary Education",
			EligibilityLevel: "Class 1-5",
			Deadline:         "2026-10-15",
			Amount:           "150 BDT/month",
		},
		&models.LegalRecord{
			RecordBase:  base("seed-legal-1", constants.CategoryLegal),
			ServiceName: "Free Legal Aid Desk",
			Provider:    "District Legal Aid Committee",
			Address:     "Judge Court Building, Netrokona",
			Phone:       "01700-000005",
		},
		&models.AgricultureRecord{
			RecordBase:  base("seed-agriculture-1", constants.CategoryAgriculture),
			Topic:       "Boro paddy fertilizer schedule",
			Advice:      "Apply urea in three splits; stop irrigation ten days before harvest.",
			OfficerName: "Upazila Agriculture Officer",
			Phone:       "01700-000006",
		},
		&models.HousingRecord{
			RecordBase:   base("seed-housing-1", constants.CategoryHousing),
			Title:        "2-room flat near college gate",
			PropertyType: "Flat",
			Area:         "College Road",
			Rent:         "6,500 BDT/month",
			ContactPhone: "01700-000007",
		},
		&models.DigitalServiceRecord{
			RecordBase:  base("seed-digital-services-1", constants.CategoryDigitalServices),
			ServiceName: "Online Birth Certificate",
			URL:         "https://bdris.gov.bd",
			Description: "Apply for and verify birth registration certificates online.",
			Fee:         "50 BDT",
		},
		&models.CultureRecord{
			RecordBase: base("seed-culture-1", constants.CategoryCulture),
			Name:       "Baul Mela",
			Kind:       "Festival",
			Venue:      "Kendua Old Bazar ground",
			Schedule:   "First week of Falgun",
		},
		&models.EmergencyNewsRecord{
			RecordBase: base("seed-emergency-news-1", constants.CategoryEmergencyNews),
			Headline:   "Flood shelter list published",
			Details:    "Twelve shelters are open; contact the control room at **01700-000008**.",
			Severity:   "high",
		},
		&models.JobRecord{
			RecordBase:   base("seed-jobs-1", constants.CategoryJobs),
			Title:        "Office Assistant",
			Organization: "Upazila Parishad",
			Deadline:     "2026-09-30",
			Salary:       "Grade 20",
			ApplyURL:     "http://www.mopa.gov.bd",
		},
	}
}
