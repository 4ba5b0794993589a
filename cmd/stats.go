package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkline/tutora/internal/store"
	"github.com/mkline/tutora/internal/topics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session history and per-topic accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		// Per-topic accuracy.
		fmt.Println("Accuracy by Topic")
		fmt.Println(strings.Repeat("─", 48))
		anyAccuracy := false
		for _, t := range topics.All() {
			acc, err := repo.TopicAccuracy(ctx, t.ID)
			if err != nil {
				return fmt.Errorf("topic accuracy: %w", err)
			}
			if acc == 0 {
				continue
			}
			anyAccuracy = true
			fmt.Printf("%-28s  %5.0f%%\n", t.Name, acc*100)
		}
		if !anyAccuracy {
			fmt.Println("No answers recorded yet.")
		}

		sessions, err := repo.SessionHistory(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("session history: %w", err)
		}

		fmt.Println()
		fmt.Println("Recent Sessions")
		fmt.Println(strings.Repeat("─", 88))
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-28s  %5s  %9s  %8s  %6s  %s\n",
			"Date", "Topic", "Score", "Questions", "Sections", "Time", "Status")
		for _, row := range sessions {
			status := "completed"
			if !row.Completed {
				status = "abandoned"
			}
			dur := time.Duration(row.DurationSecs) * time.Second
			fmt.Printf("%-16s  %-28s  %5.1f  %9d  %8d  %6s  %s\n",
				row.Timestamp.Local().Format("2006-01-02 15:04"),
				topics.DisplayName(row.Topic),
				row.PreScore,
				row.QuestionsServed,
				row.SegmentsCompleted,
				formatDuration(dur),
				status)
		}
		return nil
	},
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
