package quizgen

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/mentorai/internal/quiz"
)

// MaxPromptChars bounds a generated question prompt.
const MaxPromptChars = 1000

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if utf8.RuneCountInString(q.Prompt) > MaxPromptChars {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 1000 characters",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}
	return nil
}
