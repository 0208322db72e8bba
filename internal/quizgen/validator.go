package quizgen

import (
	"fmt"

	"github.com/abhisek/mentorai/internal/quiz"
)

// Validator checks a generated question and may repair it in place.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for logs, e.g. "structural".
	Name() string

	// Validate returns nil if q is usable.
	Validate(q *quiz.Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
