package quizgen

import (
	"time"

	"github.com/abhisek/mentorai/internal/config"
	"github.com/abhisek/mentorai/internal/quiz"
)

// Options describes the quiz to generate.
type Options struct {
	Discipline string `json:"discipline" validate:"required,catalog=discipline"`
	Level      string `json:"level" validate:"omitempty,catalog=level"`
	QuizType   string `json:"quiz_type" validate:"required,catalog=quiztype"`
	Difficulty string `json:"difficulty" validate:"required,catalog=difficulty"`
	Count      int    `json:"count" validate:"min=1,max=50"`
	EvalMode   string `json:"eval_mode" validate:"omitempty,catalog=evalmode"`

	Scheme           quiz.Scheme   `json:"scheme"`
	ShuffleQuestions bool          `json:"shuffle_questions"`
	ShuffleOptions   bool          `json:"shuffle_options"`
	ShowExplanations bool          `json:"show_explanations"`
	TimeLimit        time.Duration `json:"time_limit"` // 0 = automatic
}

// OptionsFromConfig seeds Options from the configured quiz defaults.
// An unrecognized scheme name falls back to binary.
func OptionsFromConfig(cfg config.Config, discipline, level string) Options {
	scheme, err := quiz.ParseScheme(cfg.Quiz.Scheme)
	if err != nil {
		scheme = quiz.SchemeBinary
	}
	return Options{
		Discipline:       discipline,
		Level:            level,
		QuizType:         cfg.Quiz.QuizType,
		Difficulty:       cfg.Quiz.Difficulty,
		Count:            cfg.Quiz.Count,
		EvalMode:         cfg.Quiz.EvalMode,
		Scheme:           scheme,
		ShuffleQuestions: cfg.Quiz.ShuffleQuestions,
		ShuffleOptions:   cfg.Quiz.ShuffleOptions,
		ShowExplanations: cfg.Quiz.ShowExplanations,
		TimeLimit:        cfg.QuizTimeLimit(),
	}
}
