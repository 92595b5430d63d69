package cmd

import (
	"fmt"

	"github.com/oslerlabs/osler/internal/patterns"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the built-in topic profiles",
	Long:  "List the topics with curated subtopic breakdowns. Any other topic works too; its breakdown then comes from the dialogue model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		for _, name := range patterns.TopicNames() {
			fmt.Println(name)
			if !verbose {
				continue
			}
			profile, ok := patterns.FindTopicProfile(name)
			if !ok {
				continue
			}
			for _, sub := range profile.Subtopics {
				fmt.Printf("  - %s\n", sub.Title)
			}
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().BoolP("verbose", "v", false, "Show each topic's subtopics")
}
