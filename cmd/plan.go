package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trafficlab/feedscore/internal/actionplan"
	"github.com/trafficlab/feedscore/internal/config"
)

var planCmd = &cobra.Command{
	Use:   "plan [glob...]",
	Short: "Show only the remediation action plan",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPlan(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(args []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	rep, err := buildReport(cfg, args)
	if err != nil {
		return err
	}

	plan := rep.ActionPlan
	fmt.Printf("Action plan for %d events (composite %d%%)\n", rep.EventCount, rep.Composite.Percentage)
	renderBucket("Immediate", plan.Immediate)
	renderBucket("Short term", plan.ShortTerm)
	renderBucket("Long term", plan.LongTerm)
	fmt.Printf("\nImprovement potential: +%d points (projected grade %s)\n",
		plan.ImprovementPotential, plan.ProjectedGrade)
	return nil
}

func renderBucket(name string, entries []actionplan.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", name)
	for _, e := range entries {
		fmt.Printf("  • %-14s %5.1f%% complete, +%.1f points\n", e.Field, e.Completeness, e.PointsGained)
	}
}
