package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/analytics"
	"github.com/abhisek/mentorai/internal/api"
	"github.com/abhisek/mentorai/internal/store"
	"github.com/abhisek/mentorai/internal/ui/report"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Review quiz history and statistics",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := s.ResultRepo().ListResults(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No results yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-32s  %7s  %7s  %-12s\n", "ID", "Completed", "Quiz", "Score", "Correct", "Mention")
		fmt.Println(strings.Repeat("─", 92))
		for _, rec := range records {
			r := rec.Result
			completed := "-"
			if !r.CompletedAt.IsZero() {
				completed = r.CompletedAt.Local().Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-5d  %-19s  %-32s  %7.1f  %3d/%-3d  %-12s\n",
				rec.ID, completed, truncate(r.QuizID, 32), r.Score,
				r.CorrectAnswers, r.TotalQuestions, analytics.Mention(r.Score))
		}
		return nil
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.ResultRepo().GetResult(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("result %d: %w", id, store.ErrNotFound)
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(rec)
		}
		fmt.Println(report.RenderResult(rec.Result, nil))
		return nil
	},
}

var resultsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		history, err := s.ResultRepo().History(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		stats := analytics.Statistics(history)
		comps := analytics.CompetencyAverages(history)
		mentions := analytics.MentionDistribution(history)
		projection := analytics.Projection(history, api.ProjectionSteps)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(map[string]any{
				"statistics":   stats,
				"competencies": comps,
				"mentions":     mentions,
				"projection":   projection,
			})
		}
		fmt.Println(report.RenderStats(stats, comps, mentions, projection))
		return nil
	},
}

var resultsExportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export the quiz history as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		history, err := s.ResultRepo().History(cmd.Context())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := store.ExportResultsCSV(f, history); err != nil {
			f.Close()
			return fmt.Errorf("export: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Exported %d results to %s\n", len(history), args[0])
		return nil
	},
}

func init() {
	resultsListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
	resultsShowCmd.Flags().Bool("json", false, "Print the result as JSON")
	resultsStatsCmd.Flags().Bool("json", false, "Print statistics as JSON")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
	resultsCmd.AddCommand(resultsStatsCmd)
	resultsCmd.AddCommand(resultsExportCmd)
}
