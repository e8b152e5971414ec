package models

import (
	"encoding/json"
	"fmt"

	"github.com/amarupazila/app-local-info/internal/constants"
)

// Record is one unit of localized informational content. The concrete type is
// determined by the category tag; every variant embeds RecordBase.
type Record interface {
	RecordID() string
	CategoryTag() constants.Category
	Location() (district, upazila string)
}

// RecordBase carries the fields shared by every record variant. ID and
// Category are immutable once assigned by the store.
type RecordBase struct {
	ID       string             `json:"id,omitempty"`
	Category constants.Category `json:"category"`
	District string             `json:"district"`
	Upazila  string             `json:"upazila"`
}

func (b RecordBase) RecordID() string                { return b.ID }
func (b RecordBase) CategoryTag() constants.Category { return b.Category }
func (b RecordBase) Location() (string, string)      { return b.District, b.Upazila }

// EducationRecord describes a school, college or madrasa.
type EducationRecord struct {
	RecordBase
	Name            string `json:"name" validate:"required"`
	InstitutionType string `json:"institution_type"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
}

// HealthRecord describes a public health facility.
type HealthRecord struct {
	RecordBase
	Name         string   `json:"name" validate:"required"`
	FacilityType string   `json:"facility_type"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Services     []string `json:"services,omitempty"`
}

// PrivateHealthRecord describes a private doctor or diagnostic chamber.
type PrivateHealthRecord struct {
	RecordBase
	Name          string `json:"name" validate:"required"`
	Specialty     string `json:"specialty"`
	Chamber       string `json:"chamber"`
	Phone         string `json:"phone"`
	VisitingHours string `json:"visiting_hours"`
}

// TransportRecord describes a bus, train or launch route.
type TransportRecord struct {
	RecordBase
	RouteName     string `json:"route_name" validate:"required"`
	TransportType string `json:"transport_type"`
	Departure     string `json:"departure"`
	Destination   string `json:"destination"`
	Schedule      string `json:"schedule"`
	Fare          string `json:"fare"`
}

// AdministrativeRecord describes a government office contact.
type AdministrativeRecord struct {
	RecordBase
	OfficeName  string `json:"office_name" validate:"required"`
	OfficerName string `json:"officer_name"`
	Designation string `json:"designation"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// UtilitiesRecord describes an electricity, gas or water provider.
type UtilitiesRecord struct {
	RecordBase
	ProviderName  string `json:"provider_name" validate:"required"`
	ServiceType   string `json:"service_type"`
	Hotline       string `json:"hotline"`
	OfficeAddress string `json:"office_address"`
}

// WeatherRecord is a local weather bulletin.
type WeatherRecord struct {
	RecordBase
	Summary     string `json:"summary" validate:"required"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	Warning     string `json:"warning,omitempty"`
	ReportedAt  int64  `json:"reported_at,omitempty"`
}

// ProjectRecord describes an ongoing development project.
type ProjectRecord struct {
	RecordBase
	ProjectName        string `json:"project_name" validate:"required"`
	ImplementingAgency string `json:"implementing_agency"`
	Budget             string `json:"budget"`
	Status             string `json:"status"`
	CompletionDate     string `json:"completion_date"`
}

// AnnouncementRecord is a public notice. Body may contain markdown.
type AnnouncementRecord struct {
	RecordBase
	Title       string `json:"title" validate:"required"`
	Body        string `json:"body"`
	IssuedBy    string `json:"issued_by"`
	PublishedAt int64  `json:"published_at,omitempty"`
}

// ScholarshipRecord describes a scholarship or stipend.
type ScholarshipRecord struct {
	RecordBase
	Title            string `json:"title" validate:"required"`
	Provider         string `json:"provider"`
	EligibilityLevel string `json:"eligibility_level"`
	Deadline         string `json:"deadline"`
	Amount           string `json:"amount"`
}

// LegalRecord describes a legal aid service.
type LegalRecord struct {
	RecordBase
	ServiceName string `json:"service_name" validate:"required"`
	Provider    string `json:"provider"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// AgricultureRecord is advisory content for farmers.
type AgricultureRecord struct {
	RecordBase
	Topic       string `json:"topic" validate:"required"`
	Advice      string `json:"advice"`
	OfficerName string `json:"officer_name"`
	Phone       string `json:"phone"`
}

// HousingRecord is a rental or property listing.
type HousingRecord struct {
	RecordBase
	Title        string `json:"title" validate:"required"`
	PropertyType string `json:"property_type"`
	Area         string `json:"area"`
	Rent         string `json:"rent"`
	ContactPhone string `json:"contact_phone"`
}

// DigitalServiceRecord describes an online government service.
type DigitalServiceRecord struct {
	RecordBase
	ServiceName string `json:"service_name" validate:"required"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Fee         string `json:"fee"`
}

// CultureRecord describes a cultural event or heritage site.
type CultureRecord struct {
	RecordBase
	Name     string `json:"name" validate:"required"`
	Kind     string `json:"kind"`
	Venue    string `json:"venue"`
	Schedule string `json:"schedule"`
}

// EmergencyNewsRecord is urgent local news. Details may contain markdown.
type EmergencyNewsRecord struct {
	RecordBase
	Headline   string `json:"headline" validate:"required"`
	Details    string `json:"details"`
	Severity   string `json:"severity"`
	ReportedAt int64  `json:"reported_at,omitempty"`
}

// JobRecord is a local job posting.
type JobRecord struct {
	RecordBase
	Title        string `json:"title" validate:"required"`
	Organization string `json:"organization"`
	Deadline     string `json:"deadline"`
	Salary       string `json:"salary"`
	ApplyURL     string `json:"apply_url"`
}

// UnknownRecord holds a record whose category tag is outside the known set,
// for example one written by a newer authoring surface. It is carried through
// the pipeline untouched and projected with the fallback pair; it must never
// make the pipeline fail.
type UnknownRecord struct {
	RecordBase
	Fields map[string]interface{} `json:"-"`
}

// DecodeRecord unmarshals a raw document into its concrete variant based on
// the category tag. An unrecognized tag yields an UnknownRecord, not an
// error; an error is returned only for malformed JSON.
func DecodeRecord(data []byte) (Record, error) {
	var envelope struct {
		Category constants.Category `json:"category"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding record envelope: %w", err)
	}

	var rec Record
	switch envelope.Category {
	case constants.CategoryEducation:
		rec = &EducationRecord{}
	case constants.CategoryHealth:
		rec = &HealthRecord{}
	case constants.CategoryPrivateHealth:
		rec = &PrivateHealthRecord{}
	case constants.CategoryTransport:
		rec = &TransportRecord{}
	case constants.CategoryAdministrative:
		rec = &AdministrativeRecord{}
	case constants.CategoryUtilities:
		rec = &UtilitiesRecord{}
	case constants.CategoryWeather:
		rec = &WeatherRecord{}
	case constants.CategoryProjects:
		rec = &ProjectRecord{}
	case constants.CategoryAnnouncements:
		rec = &AnnouncementRecord{}
	case constants.CategoryScholarship:
		rec = &ScholarshipRecord{}
	case constants.CategoryLegal:
		rec = &LegalRecord{}
	case constants.CategoryAgriculture:
		rec = &AgricultureRecord{}
	case constants.CategoryHousing:
		rec = &HousingRecord{}
	case constants.CategoryDigitalServices:
		rec = &DigitalServiceRecord{}
	case constants.CategoryCulture:
		rec = &CultureRecord{}
	case constants.CategoryEmergencyNews:
		rec = &EmergencyNewsRecord{}
	case constants.CategoryJobs:
		rec = &JobRecord{}
	default:
		unknown := &UnknownRecord{}
		if err := json.Unmarshal(data, &unknown.RecordBase); err != nil {
			return nil, fmt.Errorf("decoding unknown record: %w", err)
		}
		if err := json.Unmarshal(data, &unknown.Fields); err != nil {
			return nil, fmt.Errorf("decoding unknown record fields: %w", err)
		}
		return unknown, nil
	}

	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", envelope.Category, err)
	}
	return rec, nil
}

// EncodeRecord marshals a record into its flat document form.
func EncodeRecord(rec Record) ([]byte, error) {
	if unknown, ok := rec.(*UnknownRecord); ok && unknown.Fields != nil {
		return json.Marshal(unknown.Fields)
	}
	return json.Marshal(rec)
}
