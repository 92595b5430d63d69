package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oslerlabs/osler/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if stats.SessionsStarted == 0 {
			fmt.Println("No sessions yet. Run `osler tutor` to start one.")
			return nil
		}

		fmt.Println("Sessions")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  Started:    %d\n", stats.SessionsStarted)
		fmt.Printf("  Completed:  %d\n", stats.SessionsCompleted)
		fmt.Printf("  Understood: %d subtopics\n", stats.SubtopicsUnderstood)
		fmt.Printf("  Gaps:       %d subtopics\n", stats.SubtopicsGap)

		if len(stats.TopicCounts) > 0 {
			fmt.Println()
			fmt.Println("Topics")
			fmt.Println(strings.Repeat("─", 40))
			for _, topic := range sortedKeys(stats.TopicCounts) {
				fmt.Printf("  %-30s %d\n", topic, stats.TopicCounts[topic])
			}
		}

		if stats.AnswersAssessed > 0 {
			fmt.Println()
			fmt.Println("Answers")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("  Assessed: %d\n", stats.AnswersAssessed)
			for _, quality := range sortedKeys(stats.QualityCounts) {
				fmt.Printf("  %-10s %d\n", quality, stats.QualityCounts[quality])
			}
		}

		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
