package quizgen

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/llm"
)

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run in order on every generated question. The first
	// failure drops the question.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// ExcerptChars is how much of the document goes into the prompt.
	ExcerptChars int

	// Rand drives shuffling. Nil seeds a fresh source per quiz.
	Rand *rand.Rand

	// Now stamps quiz creation. Nil uses time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceValidator{},
		},
		MaxTokens:    4096,
		Temperature:  llm.DefaultTemperature,
		ExcerptChars: document.ExcerptChars,
	}
}
