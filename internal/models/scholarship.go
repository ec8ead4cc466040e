package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scholarship is a posted listing. PostedBy is a soft reference to the
// posting identity's email; nothing cascades when a listing is deleted.
type Scholarship struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ScholarshipName     string         `gorm:"size:255;not null" json:"scholarshipName"`
	UniversityName      string         `gorm:"size:255;not null;index" json:"universityName"`
	UniversityLogo      string         `gorm:"type:text" json:"universityLogo"`
	UniversityCountry   string         `gorm:"size:100" json:"universityCountry"`
	UniversityCity      string         `gorm:"size:100" json:"universityCity"`
	UniversityWorldRank int            `json:"universityWorldRank"`
	SubjectCategory     string         `gorm:"size:100;index" json:"subjectCategory"`
	ScholarshipCategory string         `gorm:"size:100;index" json:"scholarshipCategory"`
	DegreeCategory      string         `gorm:"size:100" json:"degreeCategory"`
	TuitionFee          float64        `json:"tuitionFee"`
	ApplicationFee      float64        `json:"applicationFee"`
	ServiceCharge       float64        `json:"serviceCharge"`
	ApplicationDeadline datatypes.Date `json:"applicationDeadline"`
	PostDate            time.Time      `json:"postDate"`
	PostedBy            string         `gorm:"size:255;index" json:"postedBy"`
	Slots               int            `gorm:"column:slots;default:0" json:"scholarshipQty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ScholarshipAllowedFields is the full-replace allowlist: only these columns
// are ever written by an update, regardless of what the payload carries.
var ScholarshipAllowedFields = []string{
	"scholarship_name",
	"university_name",
	"university_logo",
	"university_country",
	"university_city",
	"university_world_rank",
	"subject_category",
	"scholarship_category",
	"degree_category",
	"tuition_fee",
	"application_fee",
	"service_charge",
	"application_deadline",
	"post_date",
	"slots",
}
