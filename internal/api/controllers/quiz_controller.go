package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edugo/internal/models/request_models"
	"edugo/internal/services"
	"edugo/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (q *QuizController) StartQuizHandler(c *gin.Context) {
	resp, err := q.quizService.StartQuiz(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Quiz started")
}

func (q *QuizController) AnswerHandler(c *gin.Context) {
	var req request_models.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	resp, err := q.quizService.SelectAnswer(c.Request.Context(), req.SessionID, req.Step, req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Answer recorded")
}

func (q *QuizController) AdvanceHandler(c *gin.Context) {
	var req request_models.QuizStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	resp, err := q.quizService.Advance(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Advanced")
}

func (q *QuizController) RetreatHandler(c *gin.Context) {
	var req request_models.QuizStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	resp, err := q.quizService.Retreat(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Stepped back")
}

func (q *QuizController) ResetHandler(c *gin.Context) {
	var req request_models.QuizStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}
	resp, err := q.quizService.Reset(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Quiz reset")
}

func (q *QuizController) ResultHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}
	resp, err := q.quizService.Result(c.Request.Context(), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Quiz result computed")
}
