package grading

import (
	"unicode/utf8"

	"github.com/abhisek/mentorai/internal/quiz"
)

const (
	// DefaultWeakAreaLimit caps the weak areas reported per result.
	DefaultWeakAreaLimit = 5

	// DefaultPromptLimit is the number of prompt runes kept in a weak area.
	DefaultPromptLimit = 50

	ellipsis = "..."
)

// Engine folds per-question outcomes into a quiz.Result.
type Engine struct {
	weakAreaLimit int
	promptLimit   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeakAreaLimit sets how many weak areas a result keeps.
func WithWeakAreaLimit(n int) Option {
	return func(e *Engine) { e.weakAreaLimit = n }
}

// WithPromptLimit sets how many prompt runes a weak area keeps.
func WithPromptLimit(n int) Option {
	return func(e *Engine) { e.promptLimit = max(n, 0) }
}

// NewEngine returns an Engine with the default limits.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		weakAreaLimit: DefaultWeakAreaLimit,
		promptLimit:   DefaultPromptLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// Score scores answers against def with the default engine.
func Score(def *quiz.Definition, answers quiz.AnswerSet) quiz.Result {
	return defaultEngine.Score(def, answers)
}

// QuestionOutcome is the audit record of one question's evaluation.
type QuestionOutcome struct {
	Index      int     `json:"index"`
	QuestionID int     `json:"question_id"`
	Competency string  `json:"competency"`
	Points     float64 `json:"points"`
	Answered   bool    `json:"answered"`
	Answer     string  `json:"answer,omitempty"`
	Outcome

	// Credited is the award after the per-question floor at zero; it is
	// what the question adds to the earned points.
	Credited float64 `json:"credited"`
}

// Breakdown evaluates every question of def in its current order.
func (e *Engine) Breakdown(def *quiz.Definition, answers quiz.AnswerSet) []QuestionOutcome {
	if def == nil {
		return nil
	}

	out := make([]QuestionOutcome, len(def.Questions))
	for i, q := range def.Questions {
		qo := QuestionOutcome{
			Index:      i,
			QuestionID: q.ID,
			Competency: q.Competency,
			Points:     q.Points,
		}

		if answer, ok := answers[i]; ok {
			qo.Answered = true
			qo.Answer = answer
			qo.Outcome = Evaluate(q, answer, def.Scheme)
		} else {
			qo.Outcome = EvaluateMissing(q)
		}

		qo.Credited = max(0, qo.Awarded)
		out[i] = qo
	}
	return out
}

type competencyTally struct {
	earned float64
	total  float64
}

// Score produces the result for one attempt. It never fails: a quiz
// without points scores zero.
//
// Earned points are floored per question, so a penalty never reduces the
// credit of other questions. Competency tallies cover answered questions
// only and use the unfloored award, so they can go negative under the
// negative scheme. A competency with no answered question is absent.
func (e *Engine) Score(def *quiz.Definition, answers quiz.AnswerSet) quiz.Result {
	res := quiz.Result{
		Competencies: map[string]float64{},
		WeakAreas:    []string{},
	}
	if def == nil {
		return res
	}
	res.QuizID = def.ID
	res.TotalQuestions = len(def.Questions)

	tallies := map[string]*competencyTally{}
	for _, qo := range e.Breakdown(def, answers) {
		q := def.Questions[qo.Index]

		res.TotalPoints += q.Points
		res.EarnedPoints += qo.Credited
		if qo.Correct {
			res.CorrectAnswers++
		}

		if !qo.Correct {
			res.WeakAreas = append(res.WeakAreas, TruncatePrompt(q.Prompt, e.promptLimit))
		}

		// Skipped questions stay out of the competency figures.
		if !qo.Answered {
			continue
		}
		t := tallies[q.Competency]
		if t == nil {
			t = &competencyTally{}
			tallies[q.Competency] = t
		}
		t.total += q.Points
		t.earned += qo.Awarded
	}

	if res.TotalPoints > 0 {
		res.Score = res.EarnedPoints / res.TotalPoints * 20
		res.Percentage = res.EarnedPoints / res.TotalPoints * 100
	}

	for name, t := range tallies {
		if t.total > 0 {
			res.Competencies[name] = t.earned / t.total * 100
		} else {
			res.Competencies[name] = 0
		}
	}

	if e.weakAreaLimit >= 0 && len(res.WeakAreas) > e.weakAreaLimit {
		res.WeakAreas = res.WeakAreas[:e.weakAreaLimit]
	}
	return res
}

// TruncatePrompt keeps the first n runes of prompt and appends an ellipsis.
// The ellipsis is always added so weak areas read uniformly.
func TruncatePrompt(prompt string, n int) string {
	n = max(n, 0)
	if utf8.RuneCountInString(prompt) <= n {
		return prompt + ellipsis
	}
	runes := []rune(prompt)
	return string(runes[:n]) + ellipsis
}
