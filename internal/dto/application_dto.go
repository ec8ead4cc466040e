package dto

// ApplicationRequest is the applicant-facing write payload. The applicant
// email is never taken from the body; it comes from the verified session.
type ApplicationRequest struct {
	ScholarshipID  string `json:"scholarshipId"`
	ApplicantName  string `json:"applicantName"`
	Phone          string `json:"phone"`
	Photo          string `json:"photo"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	ApplyingDegree string `json:"applyingDegree"`
	SSCResult      string `json:"sscResult"`
	HSCResult      string `json:"hscResult"`
	StudyGap       string `json:"studyGap"`
}

// ApplicationStatusRequest is the privileged single-field patch used by
// admins and agents to move an application through its lifecycle.
type ApplicationStatusRequest struct {
	Status   string `json:"new_applicationStatus"`
	Feedback string `json:"feedback,omitempty"`
}
