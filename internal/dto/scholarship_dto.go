package dto

// ScholarshipRequest is the write payload for creating or fully replacing a
// listing. Field names match what the web client has always sent.
type ScholarshipRequest struct {
	ScholarshipName     string  `json:"scholarshipName"`
	UniversityName      string  `json:"universityName"`
	UniversityLogo      string  `json:"universityLogo"`
	UniversityCountry   string  `json:"universityCountry"`
	UniversityCity      string  `json:"universityCity"`
	UniversityWorldRank int     `json:"universityWorldRank"`
	SubjectCategory     string  `json:"subjectCategory"`
	ScholarshipCategory string  `json:"scholarshipCategory"`
	DegreeCategory      string  `json:"degreeCategory"`
	TuitionFee          float64 `json:"tuitionFee"`
	ApplicationFee      float64 `json:"applicationFee"`
	ServiceCharge       float64 `json:"serviceCharge"`
	ApplicationDeadline string  `json:"applicationDeadline"` // YYYY-MM-DD
	PostDate            string  `json:"postDate,omitempty"`  // RFC3339, defaults to now
	ScholarshipQty      int     `json:"scholarshipQty"`
}

type InsertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type ReplacedResponse struct {
	MatchedCount int64 `json:"matchedCount"`
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
