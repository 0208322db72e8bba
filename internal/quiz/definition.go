package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// MinutesPerQuestion drives the automatic time limit.
const MinutesPerQuestion = 2

// Definition is a generated quiz: ordered questions plus the grading
// scheme and presentation settings chosen at creation time.
type Definition struct {
	ID               string        `json:"id"`
	Document         string        `json:"document,omitempty"`
	QuizType         string        `json:"quiz_type,omitempty"`
	Difficulty       string        `json:"difficulty,omitempty"`
	EvalMode         string        `json:"eval_mode,omitempty"`
	Scheme           Scheme        `json:"scheme"`
	TimeLimit        time.Duration `json:"time_limit"`
	ShowExplanations bool          `json:"show_explanations"`
	Questions        []Question    `json:"questions"`
	CreatedAt        time.Time     `json:"created_at"`

	// Each shuffle is applied at most once.
	QuestionsShuffled bool `json:"questions_shuffled,omitempty"`
	OptionsShuffled   bool `json:"options_shuffled,omitempty"`
}

// Option configures a Definition at creation.
type Option func(*Definition)

// WithScheme sets the grading scheme.
func WithScheme(s Scheme) Option {
	return func(d *Definition) { d.Scheme = s }
}

// WithTimeLimit sets the time limit. Zero selects the automatic limit.
func WithTimeLimit(limit time.Duration) Option {
	return func(d *Definition) { d.TimeLimit = limit }
}

// WithExplanations reveals explanations once a question is answered.
func WithExplanations(show bool) Option {
	return func(d *Definition) { d.ShowExplanations = show }
}

// WithMeta records the generation context.
func WithMeta(document, quizType, difficulty, evalMode string) Option {
	return func(d *Definition) {
		d.Document = document
		d.QuizType = quizType
		d.Difficulty = difficulty
		d.EvalMode = evalMode
	}
}

// WithCreatedAt overrides the creation timestamp.
func WithCreatedAt(t time.Time) Option {
	return func(d *Definition) { d.CreatedAt = t }
}

// NewDefinition builds a quiz from generated questions. Questions are
// normalized and numbered from 1 in the order given.
func NewDefinition(id string, questions []Question, opts ...Option) (*Definition, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	d := &Definition{
		ID:        id,
		Scheme:    SchemeBinary,
		Questions: make([]Question, len(questions)),
	}
	for i, q := range questions {
		q = Normalize(q)
		q.ID = i + 1
		d.Questions[i] = q
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.ID == "" {
		d.ID = NewQuizID(time.Now())
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	if d.TimeLimit <= 0 {
		d.TimeLimit = SuggestedTimeLimit(len(d.Questions))
	}
	return d, nil
}

// SuggestedTimeLimit returns the automatic time limit for n questions.
func SuggestedTimeLimit(n int) time.Duration {
	return time.Duration(n*MinutesPerQuestion) * time.Minute
}

// NewQuizID returns a timestamped quiz identifier with a random suffix so
// that quizzes generated within the same second do not collide.
func NewQuizID(now time.Time) string {
	return fmt.Sprintf("quiz_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}

// Len returns the number of questions.
func (d *Definition) Len() int {
	return len(d.Questions)
}

// Question returns the question at position i of the current order.
func (d *Definition) Question(i int) (Question, error) {
	if i < 0 || i >= len(d.Questions) {
		return Question{}, fmt.Errorf("%w: %d (quiz has %d questions)", ErrQuestionIndex, i, len(d.Questions))
	}
	return d.Questions[i], nil
}

// TotalPoints sums the point value of every question.
func (d *Definition) TotalPoints() float64 {
	var total float64
	for _, q := range d.Questions {
		total += q.Points
	}
	return total
}

// CheckContract reports questions that break the generation contract.
// The quiz stays usable: such questions simply cannot be answered correctly
// by choosing an option.
func (d *Definition) CheckContract() []error {
	var errs []error
	for i, q := range d.Questions {
		if !q.IsMultipleChoice() {
			continue
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Errorf("question %d: multiple choice needs at least 2 options, has %d", i+1, len(q.Options)))
		}
		if !containsExact(q.Options, q.CorrectAnswer) {
			errs = append(errs, fmt.Errorf("question %d: correct answer %q is not among the options", i+1, q.CorrectAnswer))
		}
	}
	return errs
}

// Shuffle reorders questions and/or multiple-choice options. Each kind of
// shuffle is applied at most once per quiz; later calls leave that order alone.
// Options travel with their correctness flag, so the correct answer text is
// unchanged by construction.
func (d *Definition) Shuffle(rng *rand.Rand, questions, options bool) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if questions && !d.QuestionsShuffled {
		rng.Shuffle(len(d.Questions), func(i, j int) {
			d.Questions[i], d.Questions[j] = d.Questions[j], d.Questions[i]
		})
		d.QuestionsShuffled = true
	}

	if options && !d.OptionsShuffled {
		for i := range d.Questions {
			if d.Questions[i].IsMultipleChoice() && len(d.Questions[i].Options) > 1 {
				d.Questions[i] = shuffleOptions(rng, d.Questions[i])
			}
		}
		d.OptionsShuffled = true
	}
}

type choice struct {
	text    string
	correct bool
}

func shuffleOptions(rng *rand.Rand, q Question) Question {
	choices := make([]choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = choice{text: o, correct: o == q.CorrectAnswer}
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	opts := make([]string, len(choices))
	for i, c := range choices {
		opts[i] = c.text
		if c.correct {
			q.CorrectAnswer = c.text
		}
	}
	q.Options = opts
	return q
}

func containsExact(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
