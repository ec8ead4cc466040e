package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
