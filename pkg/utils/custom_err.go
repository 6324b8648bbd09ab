package utils

import "errors"

var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrSessionNotFound    = errors.New("quiz session not found or expired")
	ErrStepUnanswered     = errors.New("current step has no answer")
	ErrStepOutOfRange     = errors.New("step is not the current step")
	ErrQuizCompleted      = errors.New("quiz already completed")
	ErrQuizIncomplete     = errors.New("quiz not completed yet")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrDeliveryFailed     = errors.New("delivery failed")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidInput       = errors.New("invalid input")
)
