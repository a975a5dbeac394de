package scoring

import (
	"math"

	"github.com/trafficlab/feedscore/internal/rubric"
)

// rankTiers maps composite percentage floors to rank and message, checked in
// order.
var rankTiers = []struct {
	floor   int
	rank    string
	message string
}{
	{90, "Excellent", "Feed meets or exceeds all major interoperability standards."},
	{80, "Very Good", "Feed is broadly standards-ready with minor gaps."},
	{70, "Good", "Feed covers the essentials; several fields need attention."},
	{60, "Fair", "Feed has significant standards gaps limiting downstream use."},
	{0, "Poor", "Feed requires substantial remediation before standards-based exchange."},
}

// Composite combines per-standard results into one weighted score. Each
// result's nested Enhanced feeds the lenient composite the same way.
func Composite(results []ComplianceResult) CompositeScore {
	score := compositeOf(results, func(r ComplianceResult) int { return r.Percentage })
	score.Breakdown = results

	allEnhanced := len(results) > 0
	for _, r := range results {
		if r.Enhanced == nil {
			allEnhanced = false
			break
		}
	}
	if allEnhanced {
		enhanced := compositeOf(results, func(r ComplianceResult) int { return r.Enhanced.Percentage })
		score.Enhanced = &enhanced
	}
	return score
}

func compositeOf(results []ComplianceResult, pct func(ComplianceResult) int) CompositeScore {
	weighted := 0.0
	for _, r := range results {
		weighted += float64(pct(r)) * rubric.CompositeWeights[r.StandardID]
	}
	percentage := int(math.Round(weighted))
	score := CompositeScore{
		Percentage: percentage,
		Grade:      GradeFor(percentage),
	}
	for _, tier := range rankTiers {
		if percentage >= tier.floor {
			score.Rank = tier.rank
			score.Message = tier.message
			break
		}
	}
	return score
}
