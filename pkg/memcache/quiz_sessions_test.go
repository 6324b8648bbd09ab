package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSessionsPutGet(t *testing.T) {
	store := NewQuizSessions()
	session := &QuizSession{ID: "s1", Answers: map[int]string{0: "holiday"}}

	store.Put(session, time.Minute)

	got := store.Get("s1")
	require.NotNil(t, got)
	assert.Equal(t, "holiday", got.Answers[0])
}

func TestQuizSessionsExpiry(t *testing.T) {
	store := NewQuizSessions()
	store.Put(&QuizSession{ID: "s1", Answers: map[int]string{}}, 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	assert.Nil(t, store.Get("s1"))
}

func TestQuizSessionsDelete(t *testing.T) {
	store := NewQuizSessions()
	store.Put(&QuizSession{ID: "s1", Answers: map[int]string{}}, time.Minute)

	store.Delete("s1")

	assert.Nil(t, store.Get("s1"))
}

func TestQuizSessionsMissing(t *testing.T) {
	store := NewQuizSessions()
	assert.Nil(t, store.Get("missing"))
}
