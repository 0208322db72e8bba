// Package session holds the state of one learner's visit: profile,
// documents, and the quiz being taken.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/grading"
	"github.com/abhisek/mentorai/internal/quiz"
)

var (
	// ErrNoActiveQuiz is returned by quiz operations when none is running.
	ErrNoActiveQuiz = errors.New("no active quiz")

	// ErrQuizInProgress is returned when starting a quiz while another runs.
	ErrQuizInProgress = errors.New("a quiz is already in progress")

	// ErrTimeExpired is returned for answers given after the time limit.
	// The quiz can still be submitted.
	ErrTimeExpired = errors.New("quiz time limit reached")
)

// HistoryWriter receives every submitted result.
type HistoryWriter interface {
	AppendResult(ctx context.Context, r quiz.Result) error
}

// Submission is the scored outcome of the last submitted quiz.
type Submission struct {
	Quiz      *quiz.Definition          `json:"quiz"`
	Result    quiz.Result               `json:"result"`
	Breakdown []grading.QuestionOutcome `json:"breakdown"`
}

// Session is a learner's working context. It is not safe for concurrent
// use; see Manager.
type Session struct {
	ID        string
	Profile   Profile
	Documents []document.Document

	Quiz      *quiz.Definition
	Answers   quiz.AnswerSet
	Current   int
	StartedAt time.Time

	last    *Submission
	engine  *grading.Engine
	history HistoryWriter
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithHistory sets where submitted results are appended.
func WithHistory(h HistoryWriter) Option {
	return func(s *Session) { s.history = h }
}

// WithEngine overrides the scoring engine.
func WithEngine(e *grading.Engine) Option {
	return func(s *Session) { s.engine = e }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session with no active quiz.
func New(profile Profile, docs []document.Document, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Profile:   profile,
		Documents: docs,
		engine:    grading.NewEngine(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Active reports whether a quiz is being taken.
func (s *Session) Active() bool {
	return s.Quiz != nil
}

// Start begins def. The timer starts now.
func (s *Session) Start(def *quiz.Definition) error {
	if s.Active() {
		return ErrQuizInProgress
	}
	if def == nil || def.Len() == 0 {
		return quiz.ErrNoQuestions
	}
	s.Quiz = def
	s.Answers = quiz.AnswerSet{}
	s.Current = 0
	s.StartedAt = s.now()
	return nil
}

// Question returns the question under the cursor.
func (s *Session) Question() (quiz.Question, error) {
	if !s.Active() {
		return quiz.Question{}, ErrNoActiveQuiz
	}
	return s.Quiz.Question(s.Current)
}

// Answer records text for question i. Blank text clears the answer.
func (s *Session) Answer(i int, text string) error {
	if !s.Active() {
		return ErrNoActiveQuiz
	}
	if _, err := s.Quiz.Question(i); err != nil {
		return err
	}
	if s.Expired(s.now()) {
		return ErrTimeExpired
	}
	s.Answers.Set(i, text)
	return nil
}

// Goto moves the cursor to question i.
func (s *Session) Goto(i int) error {
	if !s.Active() {
		return ErrNoActiveQuiz
	}
	if _, err := s.Quiz.Question(i); err != nil {
		return err
	}
	s.Current = i
	return nil
}

// Next advances the cursor and reports whether it moved.
func (s *Session) Next() bool {
	if !s.Active() || s.Current >= s.Quiz.Len()-1 {
		return false
	}
	s.Current++
	return true
}

// Prev moves the cursor back and reports whether it moved.
func (s *Session) Prev() bool {
	if !s.Active() || s.Current == 0 {
		return false
	}
	s.Current--
	return true
}

// Progress returns how many questions are answered out of the total.
func (s *Session) Progress() (answered, total int) {
	if !s.Active() {
		return 0, 0
	}
	return s.Answers.Answered(), s.Quiz.Len()
}

// Remaining returns the time left at now, never negative. It is zero
// without an active quiz.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.Active() {
		return 0
	}
	return max(s.Quiz.TimeLimit-now.Sub(s.StartedAt), 0)
}

// Expired reports whether the time limit has passed at now.
func (s *Session) Expired(now time.Time) bool {
	return s.Active() && s.Remaining(now) == 0
}

// Submit scores the quiz, appends the result to the history and clears
// the quiz state. When the history write fails the result is still
// returned, with the error.
func (s *Session) Submit(ctx context.Context) (quiz.Result, error) {
	if !s.Active() {
		return quiz.Result{}, ErrNoActiveQuiz
	}

	now := s.now()
	res := s.engine.Score(s.Quiz, s.Answers)
	res.StartedAt = s.StartedAt
	res.CompletedAt = now
	res.Duration = now.Sub(s.StartedAt)

	s.last = &Submission{
		Quiz:      s.Quiz,
		Result:    res,
		Breakdown: s.engine.Breakdown(s.Quiz, s.Answers),
	}
	s.Abandon()

	if s.history != nil {
		if err := s.history.AppendResult(ctx, res); err != nil {
			return res, fmt.Errorf("save result: %w", err)
		}
	}
	return res, nil
}

// LastSubmission returns the most recent submission, or nil.
func (s *Session) LastSubmission() *Submission {
	return s.last
}

// Abandon drops the active quiz without scoring it.
func (s *Session) Abandon() {
	s.Quiz = nil
	s.Answers = nil
	s.Current = 0
	s.StartedAt = time.Time{}
}
