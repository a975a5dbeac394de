package report

import (
	"testing"

	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
)

func testRegistry(t *testing.T) *rubric.Registry {
	t.Helper()
	reg, err := rubric.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func sampleEvents() []types.TrafficEvent {
	return []types.TrafficEvent{
		{Fields: map[string]any{
			"id": "evt-1", "state": "IA",
			"geometry":   map[string]any{"coordinates": []any{-93.6, 41.59}},
			"start_date": "2024-03-01T08:00:00Z",
			"event_type": "work-zone",
		}},
		{Fields: map[string]any{
			"id":       "evt-2",
			"headline": "Multi-vehicle crash on I-35 northbound",
		}},
		{Fields: map[string]any{
			"id":   "evt-3",
			"type": "snow and ice",
		}},
	}
}

func TestBuildReport(t *testing.T) {
	rep := Build(sampleEvents(), testRegistry(t))

	if rep.EventCount != 3 {
		t.Errorf("EventCount = %d, want 3", rep.EventCount)
	}
	if len(rep.Standards) != 3 {
		t.Fatalf("Standards = %d, want 3", len(rep.Standards))
	}
	for _, std := range rep.Standards {
		if std.Enhanced == nil {
			t.Errorf("%s missing enhanced result", std.StandardID)
			continue
		}
		if std.Enhanced.Percentage < std.Percentage {
			t.Errorf("%s enhanced %d%% below strict %d%%", std.StandardID, std.Enhanced.Percentage, std.Percentage)
		}
	}
	if rep.Composite.Enhanced == nil {
		t.Error("composite missing enhanced score")
	}
	if len(rep.FieldCompleteness) == 0 {
		t.Error("field completeness missing")
	}
	if rep.ActionPlan.ProjectedGrade == "" {
		t.Error("action plan missing projected grade")
	}
}

func TestBuildReportEmptyBatch(t *testing.T) {
	rep := Build(nil, testRegistry(t))
	if rep.EventCount != 0 {
		t.Errorf("EventCount = %d, want 0", rep.EventCount)
	}
	if rep.Composite.Percentage != 0 {
		t.Errorf("Composite.Percentage = %d, want 0", rep.Composite.Percentage)
	}
	if len(rep.Categories) != 0 {
		t.Errorf("Categories = %+v, want empty", rep.Categories)
	}
	plan := rep.ActionPlan
	if len(plan.Immediate) != 0 || len(plan.ShortTerm) != 0 || len(plan.LongTerm) != 0 {
		t.Errorf("empty batch produced a non-empty plan: %+v", plan)
	}
}

func TestCategorize(t *testing.T) {
	rep := Build(sampleEvents(), testRegistry(t))
	got := map[string]int{}
	for _, c := range rep.Categories {
		got[c.Category] = c.Count
	}
	want := map[string]int{"work-zone": 1, "incident": 1, "weather": 1}
	for category, count := range want {
		if got[category] != count {
			t.Errorf("Categories[%s] = %d, want %d (all: %v)", category, got[category], count, got)
		}
	}
}
