package models

import (
	"time"

	"github.com/google/uuid"
)

// Application status values seen in practice. The column accepts any string
// the caller supplies; these are only the common ones.
const (
	ApplicationPending    = "pending"
	ApplicationProcessing = "processing"
	ApplicationCompleted  = "completed"
	ApplicationRejected   = "rejected"
)

// Application records one identity applying to one scholarship. ScholarshipID
// is a soft reference checked for existence at write time; ApplicantEmail is
// the owning identity.
type Application struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScholarshipID       uuid.UUID `gorm:"type:uuid;not null;index" json:"scholarshipId"`
	ApplicantEmail      string    `gorm:"size:255;not null;index" json:"applicantEmail"`
	ApplicantName       string    `gorm:"size:255" json:"applicantName"`
	Phone               string    `gorm:"size:50" json:"phone"`
	Photo               string    `gorm:"type:text" json:"photo"`
	Address             string    `gorm:"type:text" json:"address"`
	Gender              string    `gorm:"size:20" json:"gender"`
	ApplyingDegree      string    `gorm:"size:100" json:"applyingDegree"`
	SSCResult           string    `gorm:"size:20" json:"sscResult"`
	HSCResult           string    `gorm:"size:20" json:"hscResult"`
	StudyGap            string    `gorm:"size:50" json:"studyGap"`
	UniversityName      string    `gorm:"size:255" json:"universityName"`
	ScholarshipCategory string    `gorm:"size:100" json:"scholarshipCategory"`
	SubjectCategory     string    `gorm:"size:100" json:"subjectCategory"`
	Status              string    `gorm:"size:50;default:'pending'" json:"applicationStatus"`
	Feedback            string    `gorm:"type:text" json:"feedback"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ApplicationAllowedFields is the allowlist for full replaces initiated by
// the applicant. Status and feedback are deliberately absent: those move only
// through the privileged patch route.
var ApplicationAllowedFields = []string{
	"applicant_name",
	"phone",
	"photo",
	"address",
	"gender",
	"applying_degree",
	"ssc_result",
	"hsc_result",
	"study_gap",
}
