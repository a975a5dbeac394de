// Package actionplan turns per-field completeness statistics into a
// prioritized remediation plan. It uses a coarser field-weight table than the
// per-standard rubrics: a small fixed set of generically named fields, each
// recognized under its common real-world aliases.
package actionplan

import (
	"math"
	"sort"

	"github.com/trafficlab/feedscore/internal/resolve"
	"github.com/trafficlab/feedscore/internal/scoring"
	"github.com/trafficlab/feedscore/internal/types"
)

// Bucket and improvement caps.
const (
	maxBucketEntries = 5
	maxImprovement   = 20
)

// FieldWeight assigns a remediation point value to one generic field.
type FieldWeight struct {
	Field   string
	Weight  int
	Aliases []string
}

// fieldWeights is ordered by descending priority and never mutated.
var fieldWeights = []FieldWeight{
	{Field: "id", Weight: 10, Aliases: []string{"event_id", "eventId"}},
	{Field: "coordinates", Weight: 10, Aliases: []string{"geometry.coordinates", "location.coordinates"}},
	{Field: "startDate", Weight: 9, Aliases: []string{"startTime", "start_time", "start_date"}},
	{Field: "type", Weight: 8, Aliases: []string{"eventType", "event_type"}},
	{Field: "severity", Weight: 7, Aliases: []string{"impact", "priority"}},
	{Field: "description", Weight: 6, Aliases: []string{"headline", "summary"}},
	{Field: "state", Weight: 6, Aliases: []string{"jurisdiction"}},
	{Field: "endDate", Weight: 5, Aliases: []string{"endTime", "end_time", "end_date"}},
	{Field: "direction", Weight: 5, Aliases: []string{"heading"}},
	{Field: "lanesClosed", Weight: 4, Aliases: []string{"lanes_closed", "lanes_affected"}},
	{Field: "roadStatus", Weight: 4, Aliases: []string{"road_status", "status"}},
	{Field: "corridor", Weight: 3, Aliases: []string{"roadName", "route", "road_names"}},
	{Field: "source", Weight: 3, Aliases: []string{"data_source_id", "feed_source"}},
	{Field: "category", Weight: 2, Aliases: []string{"event_category"}},
}

// Completeness is the presence statistics for one generic field across the
// batch.
type Completeness struct {
	Field   string  `json:"field"`
	Weight  int     `json:"weight"`
	Present int     `json:"present"`
	Missing int     `json:"missing"`
	Percent float64 `json:"percent"`
}

// Entry is one remediation item: the field, how complete it currently is,
// and the points recoverable by fixing it.
type Entry struct {
	Field        string  `json:"field"`
	Completeness float64 `json:"completeness"`
	PointsGained float64 `json:"pointsGained"`
}

// Plan is the prioritized remediation plan.
type Plan struct {
	Immediate            []Entry `json:"immediate"`
	ShortTerm            []Entry `json:"shortTerm"`
	LongTerm             []Entry `json:"longTerm"`
	ImprovementPotential int     `json:"improvementPotential"`
	ProjectedGrade       string  `json:"projectedGrade"`
}

// FieldCompleteness computes present/missing counts per generic field. A
// field counts as present when it or any alias resolves to a non-empty value;
// coordinates additionally count separate latitude/longitude scalars.
func FieldCompleteness(events []types.TrafficEvent) []Completeness {
	stats := make([]Completeness, 0, len(fieldWeights))
	for _, fw := range fieldWeights {
		c := Completeness{Field: fw.Field, Weight: fw.Weight}
		for _, ev := range events {
			if fieldPresent(ev, fw) {
				c.Present++
			} else {
				c.Missing++
			}
		}
		if total := c.Present + c.Missing; total > 0 {
			c.Percent = float64(c.Present) / float64(total) * 100
		}
		stats = append(stats, c)
	}
	return stats
}

func fieldPresent(ev types.TrafficEvent, fw FieldWeight) bool {
	for _, name := range append([]string{fw.Field}, fw.Aliases...) {
		if _, ok := resolve.Lookup(ev, name); ok {
			return true
		}
	}
	if fw.Field == "coordinates" {
		_, latOK := resolve.Lookup(ev, "latitude")
		_, lonOK := resolve.Lookup(ev, "longitude")
		return latOK && lonOK
	}
	return false
}

// Build classifies under-performing fields into immediate, short-term, and
// long-term buckets and estimates the score gain achievable by fixing the
// immediate items. currentPercentage is the composite score the projection
// starts from.
func Build(completeness []Completeness, currentPercentage int) Plan {
	plan := Plan{
		Immediate: []Entry{},
		ShortTerm: []Entry{},
		LongTerm:  []Entry{},
	}

	// An empty batch carries no evidence of missing fields; the plan stays
	// empty rather than recommending every field at once.
	evidence := false
	for _, c := range completeness {
		if c.Present+c.Missing > 0 {
			evidence = true
			break
		}
	}
	if !evidence {
		plan.ProjectedGrade = scoring.GradeFor(currentPercentage)
		return plan
	}

	sorted := make([]Completeness, len(completeness))
	copy(sorted, completeness)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		return sorted[i].Percent < sorted[j].Percent
	})

	for _, c := range sorted {
		if c.Percent >= 100 {
			continue
		}
		missingRatio := 1 - c.Percent/100
		entry := Entry{
			Field:        c.Field,
			Completeness: c.Percent,
			// Points on a 100-point scale: a weight-10 field missing from
			// every event is worth 100.
			PointsGained: float64(c.Weight) * missingRatio * 10,
		}
		switch {
		case c.Percent < 50 && c.Weight >= 7:
			if len(plan.Immediate) < maxBucketEntries {
				plan.Immediate = append(plan.Immediate, entry)
			}
		case c.Percent < 80 && c.Weight >= 5:
			if len(plan.ShortTerm) < maxBucketEntries {
				plan.ShortTerm = append(plan.ShortTerm, entry)
			}
		default:
			if len(plan.LongTerm) < maxBucketEntries {
				plan.LongTerm = append(plan.LongTerm, entry)
			}
		}
	}

	sum := 0.0
	for _, e := range plan.Immediate {
		sum += e.PointsGained
	}
	plan.ImprovementPotential = int(math.Round(sum / 10))
	if plan.ImprovementPotential > maxImprovement {
		plan.ImprovementPotential = maxImprovement
	}
	projected := currentPercentage + plan.ImprovementPotential
	if projected > 100 {
		projected = 100
	}
	plan.ProjectedGrade = scoring.GradeFor(projected)
	return plan
}
