package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor [topic]",
	Short: "Start a tutoring session",
	Long:  "Start a Socratic tutoring session, optionally jumping straight into a topic.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, strings.TrimSpace(strings.Join(args, " ")))
	},
}
