// Package report assembles the full analysis output: the three per-standard
// compliance results (strict with nested lenient), the composite score, the
// remediation plan, and the auxiliary completeness and category breakdowns.
// The report is plain serializable data for whatever transport the caller
// uses.
package report

import (
	"sort"
	"time"

	"github.com/trafficlab/feedscore/internal/actionplan"
	"github.com/trafficlab/feedscore/internal/normalize"
	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/scoring"
	"github.com/trafficlab/feedscore/internal/types"
)

// CategoryCount is the share of events in one normalized event category.
type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// Report is the complete engine output for one batch of events.
type Report struct {
	GeneratedAt       time.Time                  `json:"generatedAt"`
	EventCount        int                        `json:"eventCount"`
	Standards         []scoring.ComplianceResult `json:"standards"`
	Composite         scoring.CompositeScore     `json:"composite"`
	ActionPlan        actionplan.Plan            `json:"actionPlan"`
	FieldCompleteness []actionplan.Completeness  `json:"fieldCompleteness"`
	Categories        []CategoryCount            `json:"categories"`
}

// Build runs the full analysis over a batch of events. Every standard is
// scored twice: strict (raw track) as the primary result, lenient
// (normalized track) nested as Enhanced.
func Build(events []types.TrafficEvent, reg *rubric.Registry) *Report {
	standards := reg.All()
	results := make([]scoring.ComplianceResult, 0, len(standards))
	for i := range standards {
		std := &standards[i]
		strict := scoring.ComputeStandardCompliance(events, std, true)
		enhanced := scoring.ComputeStandardCompliance(events, std, false)
		strict.Enhanced = &enhanced
		results = append(results, strict)
	}

	composite := scoring.Composite(results)
	completeness := actionplan.FieldCompleteness(events)

	return &Report{
		GeneratedAt:       time.Now().UTC(),
		EventCount:        len(events),
		Standards:         results,
		Composite:         composite,
		ActionPlan:        actionplan.Build(completeness, composite.Percentage),
		FieldCompleteness: completeness,
		Categories:        categorize(events),
	}
}

// categorize counts events per normalized event type, falling back to the
// description text when no type field is present.
func categorize(events []types.TrafficEvent) []CategoryCount {
	counts := map[string]int{}
	for _, ev := range events {
		category := "other"
		for _, key := range []string{"eventType", "event_type", "type", "headline", "description"} {
			if v, ok := ev.Fields[key]; ok && !types.IsEmpty(v) {
				if c := normalize.EventType(types.Stringify(v)); c != "" {
					category = c
					break
				}
			}
		}
		if !knownCategory(category) {
			category = "other"
		}
		counts[category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		pct := 0.0
		if len(events) > 0 {
			pct = float64(count) / float64(len(events)) * 100
		}
		out = append(out, CategoryCount{Category: category, Count: count, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func knownCategory(c string) bool {
	switch c {
	case "incident", "closure", "work-zone", "weather", "special-event":
		return true
	}
	return false
}
