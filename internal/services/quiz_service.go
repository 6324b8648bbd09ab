package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"edugo/internal/models/request_models"
	"edugo/internal/models/response_models"
	mem "edugo/pkg/memcache"
	"edugo/pkg/utils"
)

// Recommendation labels. Exactly one is produced on quiz completion.
const (
	RecommendLongTermPathway = "long-term academic pathway"
	RecommendParentChild     = "parent-child micro-study with buddy program"
	RecommendHolidayCamp     = "short-term holiday campus program"
)

// Answer values the recommendation rules key on.
const (
	AnswerLongTerm          = "long-term"
	AnswerImmigration       = "immigration"
	AnswerParentAccompanied = "parent-accompanied"
	AnswerPrimarySchool     = "primary-school"
)

const sessionTTL = 30 * time.Minute

// fallbackNarrative replaces the advice collaborator's paragraph whenever it
// errors or is unreachable. Never surfaced as an error.
const fallbackNarrative = "根據您的回答，我們的顧問建議先預約一次免費諮詢，" +
	"由專人依孩子的年齡、預算與期望的停留時間，規劃最合適的留學方案。"

// Question order is fixed; rule derivation reads answers by step index.
const (
	stepDuration = iota
	stepAge
	stepAccompaniment
	stepBudget
	stepDestination
)

var quizQuestions = []request_models.QuizQuestion{
	{
		ID:       "duration",
		Question: "預計讓孩子在海外停留多久？",
		Options:  []string{"holiday", "one-semester", AnswerLongTerm, AnswerImmigration},
		Category: "duration",
	},
	{
		ID:       "age",
		Question: "孩子目前的就學階段？",
		Options:  []string{AnswerPrimarySchool, "junior-high", "senior-high", "graduated"},
		Category: "age",
	},
	{
		ID:       "accompaniment",
		Question: "家長是否會陪同前往？",
		Options:  []string{AnswerParentAccompanied, "solo", "group-tour"},
		Category: "accompaniment",
	},
	{
		ID:       "budget",
		Question: "整體預算範圍（新台幣）？",
		Options:  []string{request_models.BucketUnder100k, request_models.Bucket100kTo200k, request_models.BucketOver200k},
		Category: "budget",
	},
	{
		ID:       "destination",
		Question: "偏好的留學地區？",
		Options:  []string{"new-zealand", "australia", "uk", "philippines", "undecided"},
		Category: "destination",
	},
}

type QuizServiceInterface interface {
	StartQuiz(ctx context.Context) (response_models.QuizResponse, error)
	SelectAnswer(ctx context.Context, sessionID string, step int, answer string) (response_models.QuizResponse, error)
	Advance(ctx context.Context, sessionID string) (response_models.QuizResponse, error)
	Retreat(ctx context.Context, sessionID string) (response_models.QuizResponse, error)
	Reset(ctx context.Context, sessionID string) (response_models.QuizResponse, error)
	Result(ctx context.Context, sessionID string) (response_models.QuizResultResponse, error)
}

type QuizService struct {
	sessions     mem.QuizSessionStore
	adviceClient utils.AdviceClientInterface
}

func NewQuizService(sessions mem.QuizSessionStore, adviceClient utils.AdviceClientInterface) QuizServiceInterface {
	return &QuizService{
		sessions:     sessions,
		adviceClient: adviceClient,
	}
}

func (q *QuizService) StartQuiz(ctx context.Context) (response_models.QuizResponse, error) {
	session := &mem.QuizSession{
		ID:      uuid.New().String(),
		Answers: make(map[int]string),
	}
	q.sessions.Put(session, sessionTTL)
	return q.toQuizResponse(session), nil
}

// SelectAnswer records or overwrites the answer for the current step. It is
// valid only while at that step and never moves the session forward.
func (q *QuizService) SelectAnswer(ctx context.Context, sessionID string, step int, answer string) (response_models.QuizResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return response_models.QuizResponse{}, utils.ErrSessionNotFound
	}
	if session.Completed {
		return response_models.QuizResponse{}, utils.ErrQuizCompleted
	}
	if step != session.CurrentStep {
		return response_models.QuizResponse{}, utils.ErrStepOutOfRange
	}
	if answer == "" {
		return response_models.QuizResponse{}, utils.ErrInvalidInput
	}

	session.Answers[step] = answer
	q.sessions.Put(session, sessionTTL)
	return q.toQuizResponse(session), nil
}

// Advance moves to the next step, or to the completed state from the final
// step. It refuses to move past an unanswered step.
func (q *QuizService) Advance(ctx context.Context, sessionID string) (response_models.QuizResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return response_models.QuizResponse{}, utils.ErrSessionNotFound
	}
	if session.Completed {
		return response_models.QuizResponse{}, utils.ErrQuizCompleted
	}
	if _, ok := session.Answers[session.CurrentStep]; !ok {
		return response_models.QuizResponse{}, utils.ErrStepUnanswered
	}

	if session.CurrentStep+1 < len(quizQuestions) {
		session.CurrentStep++
	} else {
		session.Completed = true
		session.Recommendation = deriveRecommendation(session.Answers)
	}
	q.sessions.Put(session, sessionTTL)
	return q.toQuizResponse(session), nil
}

// Retreat steps back one question, keeping the earlier answer editable.
// At step 0 it is a no-op.
func (q *QuizService) Retreat(ctx context.Context, sessionID string) (response_models.QuizResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return response_models.QuizResponse{}, utils.ErrSessionNotFound
	}
	if session.Completed {
		return response_models.QuizResponse{}, utils.ErrQuizCompleted
	}
	if session.CurrentStep > 0 {
		session.CurrentStep--
	}
	q.sessions.Put(session, sessionTTL)
	return q.toQuizResponse(session), nil
}

// Reset clears every recorded answer and returns to the first step. It is
// the only way out of the completed state.
func (q *QuizService) Reset(ctx context.Context, sessionID string) (response_models.QuizResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return response_models.QuizResponse{}, utils.ErrSessionNotFound
	}

	session.CurrentStep = 0
	session.Answers = make(map[int]string)
	session.Completed = false
	session.Recommendation = ""
	q.sessions.Put(session, sessionTTL)
	return q.toQuizResponse(session), nil
}

// Result returns the categorical recommendation plus the narrative
// paragraph. The narrative comes from the advice collaborator when it
// responds, otherwise the local fallback is substituted silently.
func (q *QuizService) Result(ctx context.Context, sessionID string) (response_models.QuizResultResponse, error) {
	session := q.sessions.Get(sessionID)
	if session == nil {
		return response_models.QuizResultResponse{}, utils.ErrSessionNotFound
	}
	if !session.Completed {
		return response_models.QuizResultResponse{}, utils.ErrQuizIncomplete
	}

	narrative := fallbackNarrative
	if q.adviceClient != nil {
		advice, err := q.adviceClient.GenerateAdvice(ctx, answersByCategory(session.Answers))
		if err != nil {
			log.Printf("Advice client error, using fallback: %v", err)
		} else {
			narrative = advice
		}
	}

	return response_models.QuizResultResponse{
		SessionID:      session.ID,
		Recommendation: session.Recommendation,
		Narrative:      narrative,
		Answers:        copyAnswers(session.Answers),
	}, nil
}

// deriveRecommendation applies the ordered rules; the first match wins and
// the last rule has no precondition, so some branch always applies.
func deriveRecommendation(answers map[int]string) string {
	duration := answers[stepDuration]
	if duration == AnswerLongTerm || duration == AnswerImmigration {
		return RecommendLongTermPathway
	}
	if answers[stepAccompaniment] == AnswerParentAccompanied || answers[stepAge] == AnswerPrimarySchool {
		return RecommendParentChild
	}
	return RecommendHolidayCamp
}

func answersByCategory(answers map[int]string) map[string]string {
	out := make(map[string]string, len(answers))
	for step, answer := range answers {
		if step >= 0 && step < len(quizQuestions) {
			out[quizQuestions[step].Category] = answer
		}
	}
	return out
}

func copyAnswers(answers map[int]string) map[int]string {
	out := make(map[int]string, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}

func (q *QuizService) toQuizResponse(session *mem.QuizSession) response_models.QuizResponse {
	resp := response_models.QuizResponse{
		SessionID:   session.ID,
		CurrentStep: session.CurrentStep,
		TotalSteps:  len(quizQuestions),
		IsComplete:  session.Completed,
		Answers:     copyAnswers(session.Answers),
	}
	if !session.Completed {
		question := quizQuestions[session.CurrentStep]
		resp.Question = &question
	}
	return resp
}
