package scoring

import (
	"math"
	"testing"

	"github.com/trafficlab/feedscore/internal/rubric"
)

func compositeInput(wzdx, sae, tmdd int) []ComplianceResult {
	return []ComplianceResult{
		{StandardID: rubric.StandardWZDx, Percentage: wzdx},
		{StandardID: rubric.StandardSAE, Percentage: sae},
		{StandardID: rubric.StandardTMDD, Percentage: tmdd},
	}
}

func TestCompositePerfectScores(t *testing.T) {
	score := Composite(compositeInput(100, 100, 100))
	if score.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", score.Percentage)
	}
	if score.Grade != "A" || score.Rank != "Excellent" {
		t.Errorf("Grade/Rank = %s/%s, want A/Excellent", score.Grade, score.Rank)
	}
}

func TestCompositeWeightedAverage(t *testing.T) {
	tests := []struct {
		name            string
		wzdx, sae, tmdd int
	}{
		{"mixed", 80, 70, 60},
		{"skewed", 100, 0, 50},
		{"uniform", 73, 73, 73},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Composite(compositeInput(tt.wzdx, tt.sae, tt.tmdd))
			exact := float64(tt.wzdx)*0.4 + float64(tt.sae)*0.35 + float64(tt.tmdd)*0.25
			if math.Abs(float64(score.Percentage)-exact) > 0.5 {
				t.Errorf("Percentage = %d, want within rounding of %v", score.Percentage, exact)
			}
		})
	}
}

func TestCompositeRankTiers(t *testing.T) {
	tests := []struct {
		uniform int
		rank    string
	}{
		{95, "Excellent"},
		{85, "Very Good"},
		{75, "Good"},
		{65, "Fair"},
		{40, "Poor"},
	}
	for _, tt := range tests {
		score := Composite(compositeInput(tt.uniform, tt.uniform, tt.uniform))
		if score.Rank != tt.rank {
			t.Errorf("Composite(%d) rank = %q, want %q", tt.uniform, score.Rank, tt.rank)
		}
		if score.Message == "" {
			t.Errorf("Composite(%d) has no message", tt.uniform)
		}
	}
}

func TestCompositeEnhanced(t *testing.T) {
	results := compositeInput(60, 60, 60)
	for i := range results {
		results[i].Enhanced = &ComplianceResult{
			StandardID: results[i].StandardID,
			Percentage: 90,
		}
	}
	score := Composite(results)
	if score.Enhanced == nil {
		t.Fatal("Enhanced composite missing")
	}
	if score.Enhanced.Percentage != 90 {
		t.Errorf("Enhanced.Percentage = %d, want 90", score.Enhanced.Percentage)
	}
	if score.Percentage != 60 {
		t.Errorf("Percentage = %d, want strict 60", score.Percentage)
	}
}

func TestCompositeWithoutEnhanced(t *testing.T) {
	score := Composite(compositeInput(80, 80, 80))
	if score.Enhanced != nil {
		t.Error("Enhanced should be nil when per-standard results carry none")
	}
}
