package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage student profiles",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a student's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Profiles().Get(context.Background(), studentID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			fmt.Printf("No profile for %q. Create one with `sensei profile set`.\n", studentID)
			return nil
		}

		fmt.Printf("student:         %s\n", p.StudentID)
		fmt.Printf("grade:           %d\n", p.Grade)
		fmt.Printf("learning style:  %s\n", p.LearningStyle)
		fmt.Printf("level:           %s\n", p.CurrentLevel)
		fmt.Printf("strong areas:    %s\n", joinOrDash(p.StrongAreas))
		fmt.Printf("challenge areas: %s\n", joinOrDash(p.ChallengeAreas))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update a student's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetInt("grade")
		style, _ := cmd.Flags().GetString("style")
		level, _ := cmd.Flags().GetString("level")
		strong, _ := cmd.Flags().GetString("strong")
		challenge, _ := cmd.Flags().GetString("challenge")

		p := &learner.Profile{
			StudentID:      studentID,
			Grade:          grade,
			LearningStyle:  learner.LearningStyle(style),
			CurrentLevel:   learner.SkillLevel(level),
			StrongAreas:    splitList(strong),
			ChallengeAreas: splitList(challenge),
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Profiles().Upsert(context.Background(), p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Profile saved for %q.\n", studentID)
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	profileShowCmd.Flags().String("student", "default", "Student identifier")

	profileSetCmd.Flags().String("student", "default", "Student identifier")
	profileSetCmd.Flags().Int("grade", 0, "Grade level")
	profileSetCmd.Flags().String("style", "", "Learning style (visual, auditory, kinesthetic, reading-writing)")
	profileSetCmd.Flags().String("level", "", "Skill level (beginner, intermediate, advanced)")
	profileSetCmd.Flags().String("strong", "", "Comma-separated strong areas")
	profileSetCmd.Flags().String("challenge", "", "Comma-separated challenge areas")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
