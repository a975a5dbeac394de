package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [glob...]",
	Short: "Score event files against all three standards",
	Long: `Loads every event file matched by the given globs (or the configured
patterns) and prints compliance scores, grades, violations, and the
remediation plan.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
