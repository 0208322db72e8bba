package quiz

import (
	"fmt"
	"strings"
)

const (
	// DefaultPoints is assigned to questions generated without a point value.
	DefaultPoints = 1.0

	// DefaultCompetency is assigned to questions generated without a competency label.
	DefaultCompetency = "General"
)

// Kind identifies how a question is answered.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindOpen           Kind = "open"
)

// ParseKind maps the loose type labels produced by generators onto a Kind.
// Anything not recognizably multiple choice is treated as an open question.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qcm", "mcq", "multiple_choice", "multiple-choice", "choice":
		return KindMultipleChoice
	default:
		return KindOpen
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch Kind(text) {
	case KindMultipleChoice, KindOpen:
		*k = Kind(text)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
}

// Question is one item of a quiz.
type Question struct {
	// ID is the 1-based position assigned when the quiz was created.
	// It survives shuffling, so it identifies the question, not its slot.
	ID            int      `json:"id"`
	Kind          Kind     `json:"kind"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        float64  `json:"points"`
	Competency    string   `json:"competency"`
}

// IsMultipleChoice reports whether q is answered by picking an option.
func (q Question) IsMultipleChoice() bool {
	return q.Kind == KindMultipleChoice
}

// Normalize fills in defaults for fields that generated content may omit.
// It never rejects a question.
func Normalize(q Question) Question {
	if q.Points <= 0 {
		q.Points = DefaultPoints
	}
	q.Competency = strings.TrimSpace(q.Competency)
	if q.Competency == "" {
		q.Competency = DefaultCompetency
	}
	if q.Kind == "" {
		q.Kind = KindOpen
	}
	q.Prompt = strings.TrimSpace(q.Prompt)
	q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
	if len(q.Options) > 0 {
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = strings.TrimSpace(o)
		}
		q.Options = opts
	}
	return q
}
