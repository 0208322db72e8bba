package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mentorai/internal/quiz"
)

// ChoiceValidator checks multiple-choice questions: at least two options,
// and a correct answer that is one of them. An answer that differs from an
// option only by case or surrounding space is rewritten to the option text,
// since grading compares choices exactly.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(q *quiz.Question) *ValidationError {
	if !q.IsMultipleChoice() {
		return nil
	}
	if len(q.Options) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("multiple choice needs at least 2 options, has %d", len(q.Options)),
			Retryable: true,
		}
	}

	answer := strings.TrimSpace(q.CorrectAnswer)
	for _, o := range q.Options {
		if o == answer {
			q.CorrectAnswer = o
			return nil
		}
	}
	for _, o := range q.Options {
		if strings.EqualFold(o, answer) {
			q.CorrectAnswer = o
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("correct_answer %q is not among the options", answer),
		Retryable: true,
	}
}
