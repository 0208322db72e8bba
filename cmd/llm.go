package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/llm"
	"github.com/abhisek/mentorai/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the log of AI requests (summaries, quizzes, recommendations)",
}

func rule(n int) string {
	return strings.Repeat("─", n)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent AI requests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")
		if purpose != "" && !slices.Contains(llm.Purposes(), purpose) {
			return fmt.Errorf("unknown purpose %q (want one of %s)", purpose, strings.Join(llm.Purposes(), ", "))
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if failed {
			kept := events[:0]
			for _, e := range events {
				if !e.Success {
					kept = append(kept, e)
				}
			}
			events = kept
		}
		if len(events) == 0 {
			fmt.Println("No AI requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-15s  %-10s  %-24s  %11s  %6s  %s\n",
			"ID", "Time", "Purpose", "Provider", "Model", "Tokens", "Ms", "")
		fmt.Println(rule(104))
		for _, e := range events {
			status := "✓"
			if !e.Success {
				status = "✗ " + truncate(e.ErrorMessage, 40)
			}
			fmt.Printf("%-5d  %-16s  %-15s  %-10s  %-24s  %5d/%-5d  %6d  %s\n",
				e.ID, e.Timestamp.Local().Format("2006-01-02 15:04"), e.Purpose,
				truncate(e.Provider, 10), truncate(e.Model, 24),
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and raw reply of one AI request",
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

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d: %w", id, store.ErrNotFound)
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(e)
		}

		fields := [][2]string{
			{"Time", e.Timestamp.Local().Format("2006-01-02 15:04:05")},
			{"Purpose", e.Purpose},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		}
		if cost := llm.LookupCost(e.Model); cost != nil {
			fields = append(fields, [2]string{"Cost", formatCost(cost.Cost(e.InputTokens, e.OutputTokens))})
		}
		if !e.Success {
			fields = append(fields, [2]string{"Error", e.ErrorMessage})
		}
		for _, f := range fields {
			fmt.Printf("%-10s %s\n", f[0]+":", f[1])
		}

		for _, part := range []struct{ title, body string }{
			{"PROMPT", e.RequestBody},
			{"REPLY", e.ResponseBody},
		} {
			fmt.Printf("\n%s\n%s\n%s\n", rule(60), part.title, rule(60))
			if part.body == "" {
				part.body = "(not captured)"
			}
			fmt.Println(part.body)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No AI usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		fmt.Println("Usage by purpose")
		fmt.Println(rule(80))
		fmt.Printf("%-16s  %6s  %6s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg ms")
		fmt.Println(rule(80))
		var total store.LLMUsageStats
		for _, st := range byPurpose {
			fmt.Printf("%-16s  %6d  %6d  %10d  %10d  %10d  %8d\n",
				st.Purpose, st.Calls, st.Failures, st.InputTokens, st.OutputTokens,
				st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
			total.Calls += st.Calls
			total.Failures += st.Failures
			total.InputTokens += st.InputTokens
			total.OutputTokens += st.OutputTokens
		}
		fmt.Println(rule(80))
		fmt.Printf("%-16s  %6d  %6d  %10d  %10d  %10d\n", "TOTAL",
			total.Calls, total.Failures, total.InputTokens, total.OutputTokens,
			total.InputTokens+total.OutputTokens)

		fmt.Println()
		fmt.Println("Estimated cost (USD)")
		fmt.Println(rule(80))
		var sum float64
		var unpriced []string
		for _, mu := range byModel {
			price := "?"
			if cost := llm.LookupCost(mu.Model); cost != nil {
				c := cost.Cost(mu.InputTokens, mu.OutputTokens)
				sum += c
				price = formatCost(c)
			} else {
				unpriced = append(unpriced, mu.Model)
			}
			fmt.Printf("%-32s  %6d calls  %10s\n", truncate(mu.Model, 32), mu.Calls, price)
		}
		fmt.Println(rule(80))
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s        %10s\n", label, "", formatCost(sum))
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose: "+strings.Join(llm.Purposes(), ", "))
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")
	llmViewCmd.Flags().Bool("json", false, "Print the event as JSON")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
