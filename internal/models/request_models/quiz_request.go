package request_models

type QuizStartRequest struct {
	VisitorID string `json:"visitor_id"`
}

type QuizAnswerRequest struct {
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`
	Answer    string `json:"answer"`
}

type QuizStepRequest struct {
	SessionID string `json:"session_id"`
}

type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Category string   `json:"category"` // "duration", "age", "accompaniment", "budget", "destination"
}
