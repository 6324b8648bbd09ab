package response_models

type BookingResponse struct {
	Status      string `json:"status"` // "submitted"
	SubmittedAt string `json:"submitted_at"`
}
