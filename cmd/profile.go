package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/config"
	"github.com/abhisek/mentorai/internal/session"
	"github.com/abhisek/mentorai/internal/store"
	"github.com/abhisek/mentorai/internal/validate"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the learner profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := loadProfile(cmd.Context(), s)
		if err != nil {
			return err
		}
		fmt.Printf("Profil:     %s\n", p.Role)
		fmt.Printf("Discipline: %s\n", p.Discipline)
		fmt.Printf("Niveau:     %s\n", p.Level)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the learner profile",
	Long: "Update the learner profile. Values are matched case-insensitively against:\n\n" +
		"  roles:       " + strings.Join(config.Profiles, ", ") + "\n" +
		"  disciplines: " + strings.Join(config.Disciplines, ", ") + "\n" +
		"  levels:      " + strings.Join(config.Levels, ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		p, err := loadProfile(ctx, s)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("role"); cmd.Flags().Changed("role") {
			p.Role = v
		}
		if v, _ := cmd.Flags().GetString("discipline"); cmd.Flags().Changed("discipline") {
			p.Discipline = v
		}
		if v, _ := cmd.Flags().GetString("level"); cmd.Flags().Changed("level") {
			p.Level = v
		}

		p = p.Canonical()
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid profile: %s", validate.Message(err))
		}
		err = s.ProfileRepo().SaveProfile(ctx, store.ProfileData{
			Role:       p.Role,
			Discipline: p.Discipline,
			Level:      p.Level,
			UpdatedAt:  time.Now(),
		})
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Profil enregistré : %s, %s, %s\n", p.Role, p.Discipline, p.Level)
		return nil
	},
}

func init() {
	def := session.DefaultProfile()
	profileSetCmd.Flags().String("role", def.Role, "Learner role")
	profileSetCmd.Flags().String("discipline", def.Discipline, "Discipline")
	profileSetCmd.Flags().String("level", def.Level, "Study level")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
