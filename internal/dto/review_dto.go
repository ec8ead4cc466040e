package dto

type ReviewRequest struct {
	ScholarshipID  string  `json:"scholarshipId"`
	UniversityName string  `json:"universityName"`
	ReviewerName   string  `json:"reviewerName"`
	ReviewerImage  string  `json:"reviewerImage"`
	Rating         float64 `json:"rating"`
	Comment        string  `json:"comment"`
	ReviewDate     string  `json:"reviewDate,omitempty"` // RFC3339, defaults to now
}
