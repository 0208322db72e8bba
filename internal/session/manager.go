package session

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/mentorai/internal/quiz"
)

// Status is a snapshot of the active quiz.
type Status struct {
	SessionID        string    `json:"session_id"`
	QuizID           string    `json:"quiz_id"`
	Answered         int       `json:"answered"`
	Total            int       `json:"total"`
	Current          int       `json:"current"`
	StartedAt        time.Time `json:"started_at"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

// Manager guards the single session served over HTTP.
type Manager struct {
	mu      sync.Mutex
	session *Session
}

// NewManager wraps s.
func NewManager(s *Session) *Manager {
	return &Manager{session: s}
}

// Start begins def in the managed session.
func (m *Manager) Start(def *quiz.Definition) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.session.Start(def); err != nil {
		return Status{}, err
	}
	return m.status(), nil
}

// Status reports progress on the active quiz.
func (m *Manager) Status() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Active() {
		return Status{}, ErrNoActiveQuiz
	}
	return m.status(), nil
}

// Answer records an answer and moves the cursor to it.
func (m *Manager) Answer(i int, text string) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.session.Answer(i, text); err != nil {
		return Status{}, err
	}
	_ = m.session.Goto(i)
	return m.status(), nil
}

// Submit scores the active quiz.
func (m *Manager) Submit(ctx context.Context) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Active() {
		return nil, ErrNoActiveQuiz
	}
	// A failed history write still yields a scored submission.
	_, err := m.session.Submit(ctx)
	return m.session.LastSubmission(), err
}

// Abandon drops the active quiz.
func (m *Manager) Abandon() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.session.Active() {
		return ErrNoActiveQuiz
	}
	m.session.Abandon()
	return nil
}

func (m *Manager) status() Status {
	s := m.session
	answered, total := s.Progress()
	return Status{
		SessionID:        s.ID,
		QuizID:           s.Quiz.ID,
		Answered:         answered,
		Total:            total,
		Current:          s.Current,
		StartedAt:        s.StartedAt,
		RemainingSeconds: int(s.Remaining(s.now()).Seconds()),
	}
}
