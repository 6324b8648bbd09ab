package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "edugo/pkg/memcache"
	"edugo/pkg/utils"
)

type fakeAdviceClient struct {
	advice string
	err    error
	calls  int
}

func (f *fakeAdviceClient) GenerateAdvice(ctx context.Context, answers map[string]string) (string, error) {
	f.calls++
	return f.advice, f.err
}

func (f *fakeAdviceClient) Close() error { return nil }

func newTestQuiz(advice utils.AdviceClientInterface) QuizServiceInterface {
	return NewQuizService(mem.NewQuizSessions(), advice)
}

// answerAndAdvance walks the session through every step with the given
// answers, in order.
func answerAndAdvance(t *testing.T, q QuizServiceInterface, sessionID string, answers []string) {
	t.Helper()
	ctx := context.Background()
	for i, answer := range answers {
		_, err := q.SelectAnswer(ctx, sessionID, i, answer)
		require.NoError(t, err)
		_, err = q.Advance(ctx, sessionID)
		require.NoError(t, err)
	}
}

var completeAnswers = []string{"holiday", "senior-high", "solo", "100k-200k", "new-zealand"}

func TestQuizStart(t *testing.T) {
	q := newTestQuiz(nil)

	resp, err := q.StartQuiz(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 0, resp.CurrentStep)
	assert.Equal(t, 5, resp.TotalSteps)
	assert.False(t, resp.IsComplete)
	require.NotNil(t, resp.Question)
	assert.Equal(t, "duration", resp.Question.ID)
}

func TestQuizAdvanceWithoutAnswerRejected(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	_, err := q.Advance(ctx, start.SessionID)
	require.ErrorIs(t, err, utils.ErrStepUnanswered)

	// state unchanged
	resp, err := q.Retreat(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStep)
	assert.Empty(t, resp.Answers)
}

func TestQuizSelectAnswerOnlyAtCurrentStep(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	_, err := q.SelectAnswer(ctx, start.SessionID, 2, "solo")
	assert.ErrorIs(t, err, utils.ErrStepOutOfRange)
}

func TestQuizSelectAnswerOverwrites(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	_, err := q.SelectAnswer(ctx, start.SessionID, 0, "holiday")
	require.NoError(t, err)
	resp, err := q.SelectAnswer(ctx, start.SessionID, 0, AnswerLongTerm)
	require.NoError(t, err)

	assert.Equal(t, AnswerLongTerm, resp.Answers[0])
	assert.Equal(t, 0, resp.CurrentStep, "selecting an answer does not move the step")
}

func TestQuizRetreatKeepsAnswerEditable(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	_, err := q.SelectAnswer(ctx, start.SessionID, 0, "holiday")
	require.NoError(t, err)
	_, err = q.Advance(ctx, start.SessionID)
	require.NoError(t, err)

	resp, err := q.Retreat(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStep)
	assert.Equal(t, "holiday", resp.Answers[0])
}

func TestQuizRetreatAtStepZeroIsNoOp(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	resp, err := q.Retreat(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStep)
}

func TestQuizCompletionProducesOneLabel(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Contains(t, []string{
		RecommendLongTermPathway,
		RecommendParentChild,
		RecommendHolidayCamp,
	}, result.Recommendation)
}

func TestQuizNoAdvancePastCompleted(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)
	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	_, err := q.Advance(ctx, start.SessionID)
	assert.ErrorIs(t, err, utils.ErrQuizCompleted)
}

// An answer set matching rule 1 and rule 2 must yield rule 1's label.
func TestQuizRecommendationFirstMatchPrecedence(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	answers := []string{AnswerLongTerm, AnswerPrimarySchool, AnswerParentAccompanied, "over-200k", "uk"}
	answerAndAdvance(t, q, start.SessionID, answers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, RecommendLongTermPathway, result.Recommendation)
}

func TestQuizRecommendationParentChildRule(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	answers := []string{"holiday", AnswerPrimarySchool, "solo", "under-100k", "philippines"}
	answerAndAdvance(t, q, start.SessionID, answers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, RecommendParentChild, result.Recommendation)
}

func TestQuizRecommendationFallbackRule(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, RecommendHolidayCamp, result.Recommendation)
}

func TestQuizResetFromCompleted(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)
	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	resp, err := q.Reset(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStep)
	assert.False(t, resp.IsComplete)
	assert.Empty(t, resp.Answers)
}

func TestQuizResultBeforeCompletionRejected(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)

	_, err := q.Result(ctx, start.SessionID)
	assert.ErrorIs(t, err, utils.ErrQuizIncomplete)
}

func TestQuizUnknownSession(t *testing.T) {
	q := newTestQuiz(nil)

	_, err := q.Advance(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestQuizNarrativeFromAdviceClient(t *testing.T) {
	advice := &fakeAdviceClient{advice: "Consider a semester in Christchurch first."}
	q := newTestQuiz(advice)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)
	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Consider a semester in Christchurch first.", result.Narrative)
	assert.Equal(t, 1, advice.calls)
}

// The advice collaborator is best-effort: its failure is swallowed and the
// fixed fallback paragraph substituted; the categorical label still comes
// from the local rules.
func TestQuizNarrativeFallbackOnAdviceError(t *testing.T) {
	advice := &fakeAdviceClient{err: errors.New("upstream unavailable")}
	q := newTestQuiz(advice)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)
	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, fallbackNarrative, result.Narrative)
	assert.Equal(t, RecommendHolidayCamp, result.Recommendation)
}

func TestQuizNarrativeFallbackWithoutClient(t *testing.T) {
	q := newTestQuiz(nil)
	ctx := context.Background()
	start, _ := q.StartQuiz(ctx)
	answerAndAdvance(t, q, start.SessionID, completeAnswers)

	result, err := q.Result(ctx, start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, fallbackNarrative, result.Narrative)
}
