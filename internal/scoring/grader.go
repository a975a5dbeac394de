package scoring

import (
	"math"

	"github.com/trafficlab/feedscore/internal/rubric"
)

// Percentage converts a weighted score in [0,1] to a rounded percentage.
func Percentage(weightedScore float64) int {
	return int(math.Round(weightedScore * 100))
}

// GradeFor returns the base letter grade for a percentage.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}

// AdjustGrade applies the critical-ratio downgrade ladder. The ladder only
// ever lowers a grade: a standard cannot earn a strong grade by excelling at
// medium/high fields while failing critical ones.
func AdjustGrade(base string, criticalRatio float64) string {
	switch {
	case criticalRatio >= 0.85:
		return base
	case criticalRatio >= 0.75:
		switch base {
		case "A":
			return "B"
		case "B":
			return "C"
		}
		return base
	case criticalRatio >= 0.6:
		switch base {
		case "A", "B":
			return "C"
		case "C":
			return "D"
		}
		return base
	default:
		return "F"
	}
}

// StatusLabel derives the standard-specific compliance status.
func StatusLabel(labels rubric.StatusLabels, criticalRatio float64, percentage int) string {
	switch {
	case criticalRatio >= 0.9 && percentage >= 85:
		return labels.Compliant
	case criticalRatio >= 0.75 && percentage >= 65:
		return labels.Partial
	default:
		return labels.NonCompliant
	}
}
