package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating/comment left against a scholarship. ReviewerEmail is the
// owning identity; ScholarshipID is a soft reference checked at write time.
type Review struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScholarshipID  uuid.UUID `gorm:"type:uuid;not null;index" json:"scholarshipId"`
	UniversityName string    `gorm:"size:255" json:"universityName"`
	ReviewerEmail  string    `gorm:"size:255;not null;index" json:"reviewerEmail"`
	ReviewerName   string    `gorm:"size:255" json:"reviewerName"`
	ReviewerImage  string    `gorm:"type:text" json:"reviewerImage"`
	Rating         float64   `json:"rating"`
	Comment        string    `gorm:"type:text" json:"comment"`
	ReviewDate     time.Time `json:"reviewDate"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ReviewAllowedFields bounds what an owner can overwrite on their review.
var ReviewAllowedFields = []string{
	"rating",
	"comment",
	"review_date",
}
