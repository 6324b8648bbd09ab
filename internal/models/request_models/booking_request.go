package request_models

type BookingRequest struct {
	Name            string            `json:"name" binding:"required"`
	Phone           string            `json:"phone" binding:"required"`
	MessengerID     string            `json:"messenger_id" binding:"required"`
	Email           string            `json:"email,omitempty"`
	AgeGroup        string            `json:"age_group,omitempty"`
	BudgetBucket    string            `json:"budget_bucket,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
	SubmissionToken string            `json:"submission_token,omitempty"`
	QuizSessionID   string            `json:"quiz_session_id,omitempty"`
	QuizAnswers     map[string]string `json:"quiz_answers,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" binding:"required"`
}
