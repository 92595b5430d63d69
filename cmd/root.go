package cmd

import (
	"github.com/oslerlabs/osler/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "osler",
	Short: "Socratic clinical tutor for medical students",
	Long:  "Osler — terminal tutor that teaches clinical topics through Socratic questioning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OSLER_DB env var)")

	rootCmd.AddCommand(tutorCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then OSLER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
