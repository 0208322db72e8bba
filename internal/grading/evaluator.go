package grading

import (
	"github.com/abhisek/mentorai/internal/quiz"
)

const (
	// MatchThreshold is the keyword overlap an open answer needs to be correct.
	MatchThreshold = 0.6

	// NegativePenalty is the share of a multiple-choice question's points
	// deducted for a wrong answer under the negative scheme.
	NegativePenalty = 0.25

	// PartialCredit is the share of an open question's points awarded for a
	// wrong answer under the partial scheme.
	PartialCredit = 0.5
)

// Outcome is the judgement of a single answer.
type Outcome struct {
	Correct bool `json:"correct"`

	// Awarded is the signed point award before any flooring.
	Awarded float64 `json:"awarded"`

	// Confidence is the keyword overlap for open questions, and 1 or 0 for
	// multiple choice.
	Confidence float64 `json:"confidence"`
}

// Evaluate judges one submitted answer against q under scheme.
func Evaluate(q quiz.Question, answer string, scheme quiz.Scheme) Outcome {
	if q.IsMultipleChoice() {
		return evaluateChoice(q, answer, scheme)
	}
	return evaluateOpen(q, answer, scheme)
}

// EvaluateMissing is the outcome for a question left unanswered: incorrect,
// with nothing awarded under any scheme.
func EvaluateMissing(quiz.Question) Outcome {
	return Outcome{}
}

func evaluateChoice(q quiz.Question, answer string, scheme quiz.Scheme) Outcome {
	if answer == q.CorrectAnswer {
		return Outcome{Correct: true, Awarded: q.Points, Confidence: 1}
	}
	if scheme == quiz.SchemeNegative {
		return Outcome{Awarded: -q.Points * NegativePenalty}
	}
	return Outcome{}
}

func evaluateOpen(q quiz.Question, answer string, scheme quiz.Scheme) Outcome {
	overlap, ok := KeywordOverlap(q.CorrectAnswer, answer)
	if ok && overlap >= MatchThreshold {
		return Outcome{Correct: true, Awarded: q.Points, Confidence: overlap}
	}
	out := Outcome{Confidence: overlap}
	if scheme == quiz.SchemePartial {
		out.Awarded = q.Points * PartialCredit
	}
	return out
}
