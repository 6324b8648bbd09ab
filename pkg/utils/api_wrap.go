package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto the response envelope.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProgramNotFound):
		RespondError(c, http.StatusNotFound, "Program not found")
	case errors.Is(err, ErrArticleNotFound):
		RespondError(c, http.StatusNotFound, "Article not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Quiz session not found or expired")
	case errors.Is(err, ErrStepUnanswered):
		RespondError(c, http.StatusBadRequest, "Answer the current step before advancing")
	case errors.Is(err, ErrStepOutOfRange):
		RespondError(c, http.StatusBadRequest, "Answer applies to a step that is not the current one")
	case errors.Is(err, ErrQuizCompleted):
		RespondError(c, http.StatusConflict, "Quiz already completed")
	case errors.Is(err, ErrQuizIncomplete):
		RespondError(c, http.StatusConflict, "Quiz not completed yet")
	case errors.Is(err, ErrSubmissionInFlight):
		RespondError(c, http.StatusConflict, "A submission is already in progress")
	case errors.Is(err, ErrDeliveryFailed):
		RespondError(c, http.StatusBadGateway, "Could not deliver your request, please try again")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
