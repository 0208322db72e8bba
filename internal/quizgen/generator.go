// Package quizgen turns course material into quiz definitions through an
// LLM provider.
package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/llm"
	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/validate"
)

// ErrNoValidQuestions is returned when the model answered but every
// question failed validation.
var ErrNoValidQuestions = errors.New("no valid questions generated")

// Generator produces quizzes using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explication"`
	Points        float64  `json:"points"`
	Competency    string   `json:"competence"`
}

// Generate builds a quiz from text. Questions failing validation are
// dropped; the call fails only if none remain.
func (g *Generator) Generate(ctx context.Context, docName, text string, opts Options) (*quiz.Definition, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid quiz options: %w", err)
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)
	log := zerolog.Ctx(ctx).With().Str("component", "quizgen").Str("document", docName).Logger()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(document.Excerpt(text, g.config.ExcerptChars), opts)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, quiz.ErrNoQuestions
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	var dropped []error
	for i, r := range raw.Questions {
		q := quiz.Normalize(quiz.Question{
			Kind:          quiz.ParseKind(r.Type),
			Prompt:        r.Question,
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   r.Explanation,
			Points:        r.Points,
			Competency:    r.Competency,
		})
		if !q.IsMultipleChoice() {
			q.Options = nil
		}
		if verr := g.runValidators(&q); verr != nil {
			log.Warn().Int("question", i+1).Str("validator", verr.Validator).Bool("retryable", verr.Retryable).
				Msg("dropping generated question: " + verr.Message)
			dropped = append(dropped, verr)
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoValidQuestions, errors.Join(dropped...))
	}
	if len(questions) > opts.Count {
		questions = questions[:opts.Count]
	}

	now := time.Now()
	if g.config.Now != nil {
		now = g.config.Now()
	}
	def, err := quiz.NewDefinition(quiz.NewQuizID(now), questions,
		quiz.WithScheme(opts.Scheme),
		quiz.WithTimeLimit(opts.TimeLimit),
		quiz.WithExplanations(opts.ShowExplanations),
		quiz.WithMeta(docName, opts.QuizType, opts.Difficulty, opts.EvalMode),
		quiz.WithCreatedAt(now),
	)
	if err != nil {
		return nil, err
	}

	rng := g.config.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	def.Shuffle(rng, opts.ShuffleQuestions, opts.ShuffleOptions)

	log.Debug().Str("quiz_id", def.ID).Int("questions", def.Len()).Int("dropped", len(dropped)).Msg("quiz generated")
	return def, nil
}

// GenerateOrEmpty is Generate for interactive callers: any failure is
// logged and reported as an empty quiz (nil).
func (g *Generator) GenerateOrEmpty(ctx context.Context, docName, text string, opts Options) *quiz.Definition {
	def, err := g.Generate(ctx, docName, text, opts)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("document", docName).Msg("quiz generation failed, returning empty quiz")
		return nil
	}
	return def
}

func (g *Generator) runValidators(q *quiz.Question) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}
