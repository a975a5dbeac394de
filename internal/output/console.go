// Package output renders the compliance report for the supported formats:
// a styled console scorecard, JSON for machine consumers, and markdown.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trafficlab/feedscore/internal/actionplan"
	"github.com/trafficlab/feedscore/internal/report"
	"github.com/trafficlab/feedscore/internal/scoring"
)

const barWidth = 24

// categoryGlyphs decorate the category breakdown lines.
var categoryGlyphs = map[string]string{
	"incident":      "🚨",
	"work-zone":     "🚧",
	"closure":       "⛔",
	"weather":       "🌧",
	"special-event": "🎪",
	"other":         "🚗",
}

// ConsoleFormatter formats the report for console display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	enhanced bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose, enhanced bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		enhanced: enhanced,
		colorize: true,
	}
}

// Format renders the scorecard.
func (f *ConsoleFormatter) Format(rep *report.Report) error {
	if f.quiet {
		return nil
	}

	bold := f.style(lipgloss.NewStyle().Bold(true))
	dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))

	fmt.Printf("%s\n\n", bold.Render(fmt.Sprintf("Standards scorecard (%d events)", rep.EventCount)))

	for _, std := range rep.Standards {
		f.printStandard(std)
	}

	if len(rep.Categories) > 0 {
		fmt.Printf("\n%s\n", bold.Render("Event categories"))
		for _, c := range rep.Categories {
			glyph, ok := categoryGlyphs[c.Category]
			if !ok {
				glyph = categoryGlyphs["other"]
			}
			fmt.Printf("  %s %-14s %4d (%.0f%%)\n", glyph, c.Category, c.Count, c.Percent)
		}
	}

	f.printActionPlan(rep)

	composite := rep.Composite
	fmt.Printf("\n%s\n", bold.Render(fmt.Sprintf("Composite: %d%% (%s, %s)", composite.Percentage, composite.Grade, composite.Rank)))
	fmt.Printf("%s\n", dim.Render(composite.Message))
	if f.enhanced && composite.Enhanced != nil {
		fmt.Printf("%s\n", dim.Render(fmt.Sprintf("Enhanced composite: %d%% (%s, %s)",
			composite.Enhanced.Percentage, composite.Enhanced.Grade, composite.Enhanced.Rank)))
	}
	return nil
}

func (f *ConsoleFormatter) printStandard(std scoring.ComplianceResult) {
	glyph, style := f.statusDecoration(std.Percentage)
	fmt.Printf("%s %s\n", style.Render(glyph), std.StandardLabel)
	fmt.Printf("    %s %3d%%  %s  %s\n", f.renderBar(std.Percentage), std.Percentage, std.Grade, std.Status)

	if f.enhanced && std.Enhanced != nil {
		dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
		fmt.Printf("    %s\n", dim.Render(fmt.Sprintf("enhanced: %d%% (%s, %s)",
			std.Enhanced.Percentage, std.Enhanced.Grade, std.Enhanced.Status)))
	}

	if f.verbose {
		for _, cov := range std.FieldCoverage {
			fmt.Printf("      %-14s raw %5.1f%%  extracted %5.1f%%  normalized %5.1f%%\n",
				cov.Field, cov.Raw, cov.Extracted, cov.Normalized)
		}
	}

	for i, v := range std.Violations {
		if !f.verbose && i >= 3 {
			dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("8")))
			fmt.Printf("    %s\n", dim.Render(fmt.Sprintf("… %d more violations", len(std.Violations)-i)))
			break
		}
		f.printViolation(v)
	}
	for _, rec := range std.Recommendations {
		dim := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color("7")))
		fmt.Printf("    💡 %s\n", dim.Render(fmt.Sprintf("%s: %s (first seen on %s)", rec.Field, rec.Description, rec.EventID)))
	}
}

func (f *ConsoleFormatter) printViolation(v scoring.Violation) {
	var style lipgloss.Style
	if f.colorize {
		switch v.Severity {
		case "critical":
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		case "high":
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
		}
	}
	fmt.Printf("    ✘ %s [%s] %s: %s\n", style.Render(v.EventID), v.Severity, v.Field, v.Message)
}

func (f *ConsoleFormatter) printActionPlan(rep *report.Report) {
	plan := rep.ActionPlan
	if len(plan.Immediate) == 0 && len(plan.ShortTerm) == 0 && len(plan.LongTerm) == 0 {
		return
	}
	bold := f.style(lipgloss.NewStyle().Bold(true))
	fmt.Printf("\n%s\n", bold.Render("Action plan"))
	f.printBucket("Immediate", plan.Immediate, "9")
	f.printBucket("Short term", plan.ShortTerm, "3")
	f.printBucket("Long term", plan.LongTerm, "8")
	fmt.Printf("  Improvement potential: +%d points (projected grade %s)\n",
		plan.ImprovementPotential, plan.ProjectedGrade)
}

func (f *ConsoleFormatter) printBucket(name string, entries []actionplan.Entry, color string) {
	if len(entries) == 0 {
		return
	}
	style := f.style(lipgloss.NewStyle().Foreground(lipgloss.Color(color)))
	fmt.Printf("  %s\n", style.Render(name))
	for _, e := range entries {
		fmt.Printf("    • %-14s %5.1f%% complete, +%.1f points\n", e.Field, e.Completeness, e.PointsGained)
	}
}

func (f *ConsoleFormatter) renderBar(percentage int) string {
	filled := percentage * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	var style lipgloss.Style
	if f.colorize {
		switch {
		case percentage >= 85:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		case percentage >= 65:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
	}
	return style.Render(bar)
}

func (f *ConsoleFormatter) statusDecoration(percentage int) (string, lipgloss.Style) {
	if !f.colorize {
		return statusGlyph(percentage), lipgloss.NewStyle()
	}
	switch {
	case percentage >= 85:
		return "✓", lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case percentage >= 65:
		return "⚠", lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return "✗", lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
}

func statusGlyph(percentage int) string {
	switch {
	case percentage >= 85:
		return "✓"
	case percentage >= 65:
		return "⚠"
	default:
		return "✗"
	}
}

func (f *ConsoleFormatter) style(s lipgloss.Style) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return s
}
