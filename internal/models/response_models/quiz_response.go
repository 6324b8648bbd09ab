package response_models

import "edugo/internal/models/request_models"

type QuizResponse struct {
	SessionID   string                       `json:"session_id"`
	CurrentStep int                          `json:"current_step"`
	TotalSteps  int                          `json:"total_steps"`
	IsComplete  bool                         `json:"is_complete"`
	Question    *request_models.QuizQuestion `json:"question,omitempty"`
	Answers     map[int]string               `json:"answers,omitempty"`
}

type QuizResultResponse struct {
	SessionID      string         `json:"session_id"`
	Recommendation string         `json:"recommendation"`
	Narrative      string         `json:"narrative"`
	Answers        map[int]string `json:"answers"`
}
