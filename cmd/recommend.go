package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/coach"
	"github.com/abhisek/mentorai/internal/ui/report"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get a personalized study plan from your quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		history, err := s.ResultRepo().History(ctx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("Take a quiz first: recommendations are based on your results.")
			return nil
		}

		c, closeCache := newCache(ctx)
		defer closeCache()
		provider, err := newProvider(ctx, s, c)
		if err != nil {
			return err
		}

		recs := coach.New(provider).RecommendOrDefault(ctx, history)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(recs)
		}
		fmt.Println(report.RenderRecommendations(recs))
		return nil
	},
}

func init() {
	recommendCmd.Flags().Bool("json", false, "Print the raw recommendations as JSON")
}
