package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long:  "Delete the local database, including session history, assessments, and snapshots.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes all data in %s. Continue? [y/N] ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		// WAL sidecar files go with the database.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
