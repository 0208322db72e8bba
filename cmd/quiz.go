package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/config"
	"github.com/abhisek/mentorai/internal/quiz"
	"github.com/abhisek/mentorai/internal/quizgen"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/store"
	"github.com/abhisek/mentorai/internal/ui/quiztake"
	"github.com/abhisek/mentorai/internal/ui/report"
	"github.com/abhisek/mentorai/internal/validate"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate, take and review quizzes",
}

// getQuiz loads a stored quiz or wraps store.ErrNotFound.
func getQuiz(cmd *cobra.Command, s *store.Store, id string) (*quiz.Definition, error) {
	def, err := s.QuizRepo().GetQuiz(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	if def == nil {
		return nil, fmt.Errorf("quiz %q: %w", id, store.ErrNotFound)
	}
	return def, nil
}

// quizOptions applies the generate flags on top of the configured defaults.
func quizOptions(cmd *cobra.Command, prof session.Profile) (quizgen.Options, error) {
	opts := quizgen.OptionsFromConfig(cfg, prof.Discipline, prof.Level)
	f := cmd.Flags()

	catalogFlags := []struct {
		flag, catalog string
		dst           *string
	}{
		{"type", "quiztype", &opts.QuizType},
		{"difficulty", "difficulty", &opts.Difficulty},
		{"eval-mode", "evalmode", &opts.EvalMode},
	}
	for _, cf := range catalogFlags {
		if !f.Changed(cf.flag) {
			continue
		}
		v, _ := f.GetString(cf.flag)
		if m, ok := config.Match(cf.catalog, v); ok {
			v = m
		}
		*cf.dst = v
	}

	if f.Changed("count") {
		opts.Count, _ = f.GetInt("count")
	}
	if f.Changed("scheme") {
		v, _ := f.GetString("scheme")
		scheme, err := quiz.ParseScheme(v)
		if err != nil {
			return opts, fmt.Errorf("--scheme: %w (want one of %s)", err, strings.Join(quiz.SchemeNames(), ", "))
		}
		opts.Scheme = scheme
	}
	if f.Changed("time-limit") {
		v, _ := f.GetString("time-limit")
		opts.TimeLimit = config.TTLDuration(strings.TrimPrefix(v, "auto"), 0)
	}
	if f.Changed("explanations") {
		opts.ShowExplanations, _ = f.GetBool("explanations")
	}
	if f.Changed("shuffle-questions") {
		opts.ShuffleQuestions, _ = f.GetBool("shuffle-questions")
	}
	if f.Changed("shuffle-options") {
		opts.ShuffleOptions, _ = f.GetBool("shuffle-options")
	}

	if err := validate.Struct(opts); err != nil {
		return opts, fmt.Errorf("invalid quiz options: %s", validate.Message(err))
	}
	return opts, nil
}

var quizGenerateCmd = &cobra.Command{
	Use:   "generate <doc>",
	Short: "Generate a quiz from a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		doc, err := getDocument(ctx, s, args[0])
		if err != nil {
			return err
		}
		prof, err := loadProfile(ctx, s)
		if err != nil {
			return err
		}
		opts, err := quizOptions(cmd, prof)
		if err != nil {
			return err
		}

		c, closeCache := newCache(ctx)
		defer closeCache()
		provider, err := newProvider(ctx, s, c)
		if err != nil {
			return err
		}

		def := quizgen.New(provider, quizgen.DefaultConfig()).GenerateOrEmpty(ctx, doc.Name, doc.Text, opts)
		if def == nil {
			return errors.New("no question could be generated; run with --log-level debug for details")
		}
		if err := s.QuizRepo().SaveQuiz(ctx, def); err != nil {
			return fmt.Errorf("save quiz: %w", err)
		}

		fmt.Fprintf(os.Stderr, "%d questions · %s · %d min\n", def.Len(), def.Scheme, int(def.TimeLimit.Minutes()))
		fmt.Println(def.ID)
		return nil
	},
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		list, err := s.QuizRepo().ListQuizzes(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}
		if len(list) == 0 {
			fmt.Println("No quizzes yet. Generate one with `mentorai quiz generate <doc>`.")
			return nil
		}

		fmt.Printf("%-32s  %-28s  %9s  %s\n", "ID", "Document", "Questions", "Created")
		fmt.Println(strings.Repeat("─", 90))
		for _, q := range list {
			fmt.Printf("%-32s  %-28s  %9d  %s\n", q.ID, truncate(q.Document, 28), q.Questions,
				q.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var quizShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a quiz's questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		def, err := getQuiz(cmd, s, args[0])
		if err != nil {
			return err
		}
		reveal, _ := cmd.Flags().GetBool("reveal")
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if !reveal {
				for i := range def.Questions {
					def.Questions[i].CorrectAnswer = ""
					def.Questions[i].Explanation = ""
				}
			}
			return printJSON(def)
		}
		fmt.Println(report.RenderQuiz(def, reveal))
		return nil
	},
}

var quizTakeCmd = &cobra.Command{
	Use:   "take <id>",
	Short: "Take a quiz in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		def, err := getQuiz(cmd, s, args[0])
		if err != nil {
			return err
		}
		prof, err := loadProfile(ctx, s)
		if err != nil {
			return err
		}

		sess := session.New(prof, nil, session.WithHistory(s.ResultRepo()))
		if err := sess.Start(def); err != nil {
			return err
		}
		sub, err := quiztake.Run(ctx, sess)
		if errors.Is(err, quiztake.ErrAbandoned) {
			fmt.Println("Quiz abandonné.")
			return nil
		}
		if sub == nil {
			return err
		}
		fmt.Println(report.RenderResult(sub.Result, sub.Breakdown))
		if err != nil {
			return fmt.Errorf("result not saved: %w", err)
		}
		return nil
	},
}

var quizSubmitCmd = &cobra.Command{
	Use:   "submit <id>",
	Short: "Score answers read from a JSON file",
	Long: "Score answers read from a JSON file mapping 0-based question indexes to answers:\n\n" +
		`  {"0": "Paris", "2": "la dérivée mesure le taux de variation"}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		path, _ := cmd.Flags().GetString("answers")
		answers, err := readAnswers(path)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		def, err := getQuiz(cmd, s, args[0])
		if err != nil {
			return err
		}
		prof, err := loadProfile(ctx, s)
		if err != nil {
			return err
		}

		sess := session.New(prof, nil, session.WithHistory(s.ResultRepo()))
		if err := sess.Start(def); err != nil {
			return err
		}
		for i, text := range answers {
			if err := sess.Answer(i, text); err != nil {
				return fmt.Errorf("answer %d: %w", i, err)
			}
		}
		_, saveErr := sess.Submit(ctx)
		sub := sess.LastSubmission()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := printJSON(sub); err != nil {
				return err
			}
		} else {
			fmt.Println(report.RenderResult(sub.Result, sub.Breakdown))
		}
		return saveErr
	},
}

func readAnswers(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	out := make(map[int]string, len(raw))
	for k, v := range raw {
		i, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("answer key %q is not a question index", k)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	f := quizGenerateCmd.Flags()
	f.String("type", "", "Quiz type: "+strings.Join(config.QuizTypes, ", "))
	f.String("difficulty", "", "Difficulty: "+strings.Join(config.Difficulties, ", "))
	f.String("eval-mode", "", "Evaluation context: "+strings.Join(config.EvalModes, ", "))
	f.Int("count", 0, "Number of questions (1-50)")
	f.String("scheme", "", "Grading scheme: "+strings.Join(quiz.SchemeNames(), ", "))
	f.String("time-limit", "auto", "Time limit such as 15m, or auto for 2 minutes per question")
	f.Bool("explanations", true, "Show explanations after each answer")
	f.Bool("shuffle-questions", false, "Shuffle question order")
	f.Bool("shuffle-options", false, "Shuffle answer options")

	quizListCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
	quizShowCmd.Flags().Bool("reveal", false, "Show answers and explanations")
	quizShowCmd.Flags().Bool("json", false, "Print the quiz as JSON")
	quizSubmitCmd.Flags().String("answers", "", "JSON file with the answers")
	quizSubmitCmd.Flags().Bool("json", false, "Print the submission as JSON")
	_ = quizSubmitCmd.MarkFlagRequired("answers")

	quizCmd.AddCommand(quizGenerateCmd)
	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizTakeCmd)
	quizCmd.AddCommand(quizSubmitCmd)
}
