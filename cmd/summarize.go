package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/studyguide"
	"github.com/abhisek/mentorai/internal/ui/report"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <doc>",
	Short: "Generate a structured study summary of a document",
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

		c, closeCache := newCache(ctx)
		defer closeCache()
		provider, err := newProvider(ctx, s, c)
		if err != nil {
			return err
		}

		summary := studyguide.New(provider).SummarizeOrDefault(ctx, doc.Text, prof.Discipline, prof.Level)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(summary)
		}
		fmt.Println(report.RenderSummary(summary))
		return nil
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	summarizeCmd.Flags().Bool("json", false, "Print the raw summary as JSON")
}
