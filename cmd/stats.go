package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anayd/sensei/internal/progress"
	"github.com/anayd/sensei/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning streaks and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetString("student")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		dates, err := st.Attempts().ActivityDates(ctx, studentID)
		if err != nil {
			return fmt.Errorf("load activity: %w", err)
		}

		if len(dates) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		fmt.Printf("student:        %s\n", studentID)
		fmt.Printf("active days:    %d\n", len(dates))
		fmt.Printf("current streak: %d\n", progress.CurrentStreak(dates, time.Now()))
		fmt.Printf("longest streak: %d\n", progress.LongestStreak(dates))
		fmt.Printf("last active:    %s\n", dates[len(dates)-1].Format("2006-01-02"))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "default", "Student identifier")
}
