package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/envfile"
	"github.com/abhisek/mentorai/internal/llm"
)

var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "List or switch the AI provider",
}

var providerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available AI providers",
	Run: func(cmd *cobra.Command, args []string) {
		current := llm.ConfigFromEnv().Provider

		fmt.Printf("   %-12s  %-24s  %-20s  %s\n", "Name", "Model", "Key", "Description")
		fmt.Println(strings.Repeat("─", 96))
		for _, p := range llm.Providers() {
			mark := " "
			if strings.EqualFold(p.Name, current) {
				mark = "*"
			}
			key := p.KeyEnv()
			switch {
			case key == "":
				key = "-"
			case os.Getenv(key) != "":
				key += " ✓"
			}
			fmt.Printf(" %s %-12s  %-24s  %-20s  %s\n", mark, p.Name, truncate(p.Model, 24), key, p.Description)
		}
	},
}

var providerSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Set AI_PROVIDER (and optionally its API key) in a .env file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("env")
		key, _ := cmd.Flags().GetString("key")

		if err := envfile.SwitchProvider(path, args[0], key); err != nil {
			return err
		}
		p, _ := llm.LookupPreset(args[0])
		fmt.Printf("%s now uses %s (%s)\n", path, p.Name, p.Model)
		if key == "" && p.KeyRequired && os.Getenv(p.KeyEnv()) == "" {
			fmt.Printf("Remember to set %s.\n", p.KeyEnv())
		}
		return nil
	},
}

func init() {
	providerSwitchCmd.Flags().String("key", "", "API key to store for the provider")
	providerSwitchCmd.Flags().String("env", ".env", "Path to the .env file to update")

	providerCmd.AddCommand(providerListCmd)
	providerCmd.AddCommand(providerSwitchCmd)
}
