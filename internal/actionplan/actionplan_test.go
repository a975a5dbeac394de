package actionplan

import (
	"testing"

	"github.com/trafficlab/feedscore/internal/types"
)

func event(fields map[string]any) types.TrafficEvent {
	return types.TrafficEvent{Fields: fields}
}

func TestFieldCompleteness(t *testing.T) {
	events := []types.TrafficEvent{
		event(map[string]any{"id": "a", "latitude": 41.5, "longitude": -93.6, "startTime": "2024-03-01"}),
		event(map[string]any{"event_id": "b", "geometry.coordinates": nil, "start_date": "2024-03-02"}),
		event(map[string]any{}),
	}

	stats := FieldCompleteness(events)
	byField := map[string]Completeness{}
	for _, c := range stats {
		byField[c.Field] = c
	}

	// "id" present via alias event_id on the second event.
	if got := byField["id"]; got.Present != 2 || got.Missing != 1 {
		t.Errorf("id completeness = %+v, want 2 present / 1 missing", got)
	}
	// Coordinates present only where both scalars exist.
	if got := byField["coordinates"]; got.Present != 1 || got.Missing != 2 {
		t.Errorf("coordinates completeness = %+v, want 1 present / 2 missing", got)
	}
	// startDate recognized under startTime and start_date aliases.
	if got := byField["startDate"]; got.Present != 2 {
		t.Errorf("startDate completeness = %+v, want 2 present", got)
	}
	if got := byField["id"].Percent; got < 66 || got > 67 {
		t.Errorf("id percent = %v, want ~66.7", got)
	}
}

func TestBuildClassification(t *testing.T) {
	completeness := []Completeness{
		{Field: "coordinates", Weight: 10, Present: 2, Missing: 8, Percent: 20}, // immediate
		{Field: "severity", Weight: 7, Present: 4, Missing: 6, Percent: 40},     // immediate
		{Field: "description", Weight: 6, Present: 6, Missing: 4, Percent: 60},  // short term
		{Field: "direction", Weight: 5, Present: 7, Missing: 3, Percent: 70},    // short term
		{Field: "corridor", Weight: 3, Present: 9, Missing: 1, Percent: 90},     // long term
		{Field: "id", Weight: 10, Present: 10, Missing: 0, Percent: 100},        // complete, skipped
	}

	plan := Build(completeness, 70)

	wantBucket := func(name string, entries []Entry, fields ...string) {
		if len(entries) != len(fields) {
			t.Fatalf("%s has %d entries, want %d: %+v", name, len(entries), len(fields), entries)
		}
		for i, f := range fields {
			if entries[i].Field != f {
				t.Errorf("%s[%d] = %q, want %q", name, i, entries[i].Field, f)
			}
		}
	}
	wantBucket("immediate", plan.Immediate, "coordinates", "severity")
	wantBucket("shortTerm", plan.ShortTerm, "description", "direction")
	wantBucket("longTerm", plan.LongTerm, "corridor")

	for _, e := range plan.Immediate {
		if e.PointsGained <= 0 {
			t.Errorf("entry %q has no recoverable points", e.Field)
		}
	}
}

func TestBuildLowWeightNeverImmediate(t *testing.T) {
	completeness := []Completeness{
		{Field: "category", Weight: 2, Present: 0, Missing: 10, Percent: 0},
	}
	plan := Build(completeness, 50)
	if len(plan.Immediate) != 0 || len(plan.ShortTerm) != 0 {
		t.Errorf("weight-2 field should be long-term only: %+v", plan)
	}
	if len(plan.LongTerm) != 1 {
		t.Errorf("longTerm = %+v, want the category entry", plan.LongTerm)
	}
}

func TestBuildEmptyBatch(t *testing.T) {
	// No events means no evidence of missing fields, not a plan to fix
	// everything.
	plan := Build(FieldCompleteness(nil), 0)
	if len(plan.Immediate) != 0 || len(plan.ShortTerm) != 0 || len(plan.LongTerm) != 0 {
		t.Errorf("empty batch produced a non-empty plan: %+v", plan)
	}
	if plan.ImprovementPotential != 0 {
		t.Errorf("ImprovementPotential = %d, want 0", plan.ImprovementPotential)
	}
	if plan.ProjectedGrade != "F" {
		t.Errorf("ProjectedGrade = %q, want F from the current score", plan.ProjectedGrade)
	}
}

func TestBuildBucketCap(t *testing.T) {
	var completeness []Completeness
	for _, f := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		completeness = append(completeness, Completeness{Field: f, Weight: 10, Percent: 0, Missing: 10})
	}
	plan := Build(completeness, 50)
	if len(plan.Immediate) != maxBucketEntries {
		t.Errorf("immediate = %d entries, want capped at %d", len(plan.Immediate), maxBucketEntries)
	}
}

func TestBuildImprovementPotential(t *testing.T) {
	// One weight-10 field missing everywhere: 100 points, /10 => +10.
	plan := Build([]Completeness{
		{Field: "coordinates", Weight: 10, Percent: 0, Missing: 10},
	}, 70)
	if plan.ImprovementPotential != 10 {
		t.Errorf("ImprovementPotential = %d, want 10", plan.ImprovementPotential)
	}
	if plan.ProjectedGrade != "B" {
		t.Errorf("ProjectedGrade = %q, want B from 70+10", plan.ProjectedGrade)
	}

	// Many missing heavyweight fields hit the cap.
	var completeness []Completeness
	for _, f := range []string{"a", "b", "c", "d", "e"} {
		completeness = append(completeness, Completeness{Field: f, Weight: 10, Percent: 0, Missing: 10})
	}
	capped := Build(completeness, 90)
	if capped.ImprovementPotential != maxImprovement {
		t.Errorf("ImprovementPotential = %d, want capped at %d", capped.ImprovementPotential, maxImprovement)
	}
	if capped.ProjectedGrade != "A" {
		t.Errorf("ProjectedGrade = %q, want A (projection clamps at 100)", capped.ProjectedGrade)
	}
}

func TestBuildPrioritizesByWeight(t *testing.T) {
	completeness := []Completeness{
		{Field: "severity", Weight: 7, Percent: 10, Missing: 9},
		{Field: "coordinates", Weight: 10, Percent: 40, Missing: 6},
	}
	plan := Build(completeness, 50)
	if len(plan.Immediate) != 2 || plan.Immediate[0].Field != "coordinates" {
		t.Errorf("immediate = %+v, want coordinates first by weight", plan.Immediate)
	}
}
