package quiz

import "errors"

var (
	// ErrNoQuestions is returned when a quiz would be created without questions.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrQuestionIndex is returned for an index outside the quiz's question range.
	ErrQuestionIndex = errors.New("question index out of range")

	// ErrUnknownScheme is returned when a grading scheme name is not recognized.
	ErrUnknownScheme = errors.New("unknown grading scheme")

	// ErrUnknownKind is returned when a question kind cannot be decoded.
	ErrUnknownKind = errors.New("unknown question kind")
)
