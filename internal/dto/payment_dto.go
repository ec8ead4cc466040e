package dto

// PaymentIntentRequest carries the charge amount in major currency units;
// the service converts to minor units for the processor.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest records a completed charge against the caller's identity.
type PaymentRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	IntentID      string `json:"intentId"`
	ScholarshipID string `json:"scholarshipId,omitempty"`
}

type SubscriberRequest struct {
	Email string `json:"email"`
}

type SubscriberCheckResponse struct {
	Subscriber bool `json:"subscriber"`
}
