// pkg/memcache/quiz_sessions.go
package mem

import (
	"sync"
	"time"
)

// QuizSession is one visitor's progress through the recommendation quiz.
// Answers exist only for steps the visitor has actually completed.
type QuizSession struct {
	ID             string
	CurrentStep    int
	Answers        map[int]string
	Completed      bool
	Recommendation string
}

type QuizSessionStore interface {
	Put(session *QuizSession, ttl time.Duration)

	// Get returns the session if present and not expired, nil otherwise.
	Get(id string) *QuizSession

	Delete(id string)
}

type sessionEntry struct {
	session   *QuizSession
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *QuizSessions) Put(session *QuizSession, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *QuizSessions) Get(id string) *QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil
	}
	return e.session
}

func (s *QuizSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
