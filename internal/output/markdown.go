package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/trafficlab/feedscore/internal/actionplan"
	"github.com/trafficlab/feedscore/internal/report"
)

// MarkdownFormatter formats the report as a markdown document.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format renders the markdown report.
func (f *MarkdownFormatter) Format(rep *report.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Standards Compliance Report\n\n")
	fmt.Fprintf(&b, "Events analyzed: %d\n\n", rep.EventCount)

	fmt.Fprintf(&b, "## Standards\n\n")
	fmt.Fprintf(&b, "| Standard | Score | Grade | Status | Enhanced |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, std := range rep.Standards {
		enhanced := "—"
		if std.Enhanced != nil {
			enhanced = fmt.Sprintf("%d%% (%s)", std.Enhanced.Percentage, std.Enhanced.Grade)
		}
		fmt.Fprintf(&b, "| %s | %d%% | %s | %s | %s |\n",
			std.StandardLabel, std.Percentage, std.Grade, std.Status, enhanced)
	}

	fmt.Fprintf(&b, "\n## Composite\n\n")
	fmt.Fprintf(&b, "**%d%% (%s, %s)**: %s\n", rep.Composite.Percentage,
		rep.Composite.Grade, rep.Composite.Rank, rep.Composite.Message)

	if len(rep.Categories) > 0 {
		fmt.Fprintf(&b, "\n## Event Categories\n\n")
		fmt.Fprintf(&b, "| Category | Count | Share |\n|---|---|---|\n")
		for _, c := range rep.Categories {
			fmt.Fprintf(&b, "| %s | %d | %.0f%% |\n", c.Category, c.Count, c.Percent)
		}
	}

	f.writeBucket(&b, "Immediate", rep.ActionPlan.Immediate)
	f.writeBucket(&b, "Short Term", rep.ActionPlan.ShortTerm)
	f.writeBucket(&b, "Long Term", rep.ActionPlan.LongTerm)
	fmt.Fprintf(&b, "\nImprovement potential: **+%d points** (projected grade %s)\n",
		rep.ActionPlan.ImprovementPotential, rep.ActionPlan.ProjectedGrade)

	if f.outputFile != "" {
		return os.WriteFile(f.outputFile, []byte(b.String()), 0644)
	}
	_, err := fmt.Print(b.String())
	return err
}

func (f *MarkdownFormatter) writeBucket(b *strings.Builder, name string, entries []actionplan.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## Action Plan: %s\n\n", name)
	for _, e := range entries {
		fmt.Fprintf(b, "- `%s`: %.1f%% complete, +%.1f points recoverable\n",
			e.Field, e.Completeness, e.PointsGained)
	}
}
