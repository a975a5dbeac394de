package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the registered standards and their requirements",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStandards(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(standardsCmd)
}

func runStandards() error {
	registry, err := rubric.NewRegistry()
	if err != nil {
		return fmt.Errorf("building standard registry: %w", err)
	}

	for _, std := range registry.All() {
		fmt.Printf("%s (%s)\n", std.Label, std.ID)
		fmt.Printf("  %s\n", std.ReferenceURL)
		fmt.Printf("  required fields: %d critical, %d high, %d medium\n",
			std.RequiredCount(types.SeverityCritical),
			std.RequiredCount(types.SeverityHigh),
			std.RequiredCount(types.SeverityMedium))
		optional := 0
		for _, req := range std.Requirements {
			if req.Optional {
				optional++
			}
		}
		fmt.Printf("  optional fields: %d, enhancements: %d\n\n", optional, len(std.Enhancements))
	}
	return nil
}
