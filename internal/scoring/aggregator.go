package scoring

import (
	"github.com/trafficlab/feedscore/internal/resolve"
	"github.com/trafficlab/feedscore/internal/rubric"
	"github.com/trafficlab/feedscore/internal/types"
	"github.com/trafficlab/feedscore/internal/validate"
)

// trackEval is the validation outcome for one (event, requirement) on one
// value track.
type trackEval struct {
	value  any
	result validate.Result
}

// trackStats accumulates per-requirement pass counts for one track.
type trackStats struct {
	passes int
}

// ComputeStandardCompliance evaluates every required field of the rubric
// against every event, accumulating a severity-weighted score, per-track
// coverage, a capped violation list, and deduplicated optional-field
// recommendations. useRaw selects whether the raw-as-received or the
// normalized/inferred track drives the score.
func ComputeStandardCompliance(events []types.TrafficEvent, std *rubric.Standard, useRaw bool) ComplianceResult {
	result := ComplianceResult{
		StandardID:        std.ID,
		StandardLabel:     std.Label,
		ReferenceURL:      std.ReferenceURL,
		EventCount:        len(events),
		Grade:             "F",
		Status:            std.Labels.NonCompliant,
		SeverityBreakdown: map[string]float64{},
		FieldCoverage:     []TrackCoverage{},
		Violations:        []Violation{},
		Recommendations:   []Recommendation{},
	}
	if len(events) == 0 {
		// No evidence at all, as opposed to zero applicable fields below.
		result.SeverityBreakdown = map[string]float64{
			types.SeverityCritical: 0,
			types.SeverityHigh:     0,
			types.SeverityMedium:   0,
		}
		return result
	}

	passes := map[string]int{}
	recommended := map[string]bool{}

	for _, req := range std.Requirements {
		if req.Optional {
			// Optional fields feed recommendations only, independent of
			// the track selection: one entry per field, first offender.
			for _, ev := range events {
				if recommended[req.Field] || len(result.Recommendations) >= MaxRecommendations {
					break
				}
				normVal, _ := resolve.NormalizedValue(ev, req)
				if res := validate.Field(ev, req, normVal); !res.Passed {
					recommended[req.Field] = true
					result.Recommendations = append(result.Recommendations, Recommendation{
						Field:       req.Field,
						Description: req.Description,
						EventID:     ev.ID(),
					})
				}
			}
			continue
		}

		var norm, raw, extracted trackStats
		for _, ev := range events {
			evals := evaluateTracks(ev, req)
			if evals[types.TrackNormalized].result.Passed {
				norm.passes++
			}
			if evals[types.TrackRaw].result.Passed {
				raw.passes++
			}
			if evals[types.TrackExtracted].result.Passed {
				extracted.passes++
			}

			primary := evals[types.TrackNormalized]
			if useRaw {
				primary = evals[types.TrackRaw]
			}
			if primary.result.Passed {
				passes[req.Severity]++
			} else if len(result.Violations) < MaxViolations {
				result.Violations = append(result.Violations, Violation{
					EventID:         ev.ID(),
					State:           ev.State(),
					Field:           req.Field,
					SpecField:       req.SpecField,
					Severity:        req.Severity,
					Message:         primary.result.Message,
					RawValue:        evals[types.TrackRaw].value,
					ExtractedValue:  evals[types.TrackExtracted].value,
					NormalizedValue: evals[types.TrackNormalized].value,
				})
			}
		}

		total := float64(len(events))
		result.FieldCoverage = append(result.FieldCoverage, TrackCoverage{
			Field:      req.Field,
			SpecField:  req.SpecField,
			Severity:   req.Severity,
			Normalized: float64(norm.passes) / total * 100,
			Raw:        float64(raw.passes) / total * 100,
			Extracted:  float64(extracted.passes) / total * 100,
		})
	}

	weighted := 0.0
	for _, sev := range []string{types.SeverityCritical, types.SeverityHigh, types.SeverityMedium} {
		totals := std.RequiredCount(sev) * len(events)
		// Vacuous truth: a standard with no required fields at a severity
		// cannot be penalized on it.
		ratio := 1.0
		if totals > 0 {
			ratio = float64(passes[sev]) / float64(totals)
		}
		result.SeverityBreakdown[sev] = ratio
		weighted += ratio * rubric.SeverityWeights[sev]
	}
	result.WeightedScore = weighted
	result.CriticalRatio = result.SeverityBreakdown[types.SeverityCritical]
	result.Percentage = Percentage(weighted)
	result.Grade = AdjustGrade(GradeFor(result.Percentage), result.CriticalRatio)
	result.Status = StatusLabel(std.Labels, result.CriticalRatio, result.Percentage)
	return result
}

// evaluateTracks validates one requirement for one event on all three value
// tracks. The raw track falls back to the plain field resolution when the
// event stores no raw value; the extracted track falls back to the lenient
// value. Inferred values never leak into the raw track.
func evaluateTracks(ev types.TrafficEvent, req rubric.Requirement) map[string]trackEval {
	normVal, _ := resolve.NormalizedValue(ev, req)

	rawVal, ok := resolve.RawValue(ev, req)
	if !ok {
		rawVal, _ = resolve.Value(ev, req)
	}
	extVal, ok := resolve.ExtractedValue(ev, req)
	if !ok {
		extVal = normVal
	}

	return map[string]trackEval{
		types.TrackNormalized: {value: normVal, result: validate.Field(ev, req, normVal)},
		types.TrackRaw:        {value: rawVal, result: validate.Field(ev, req, rawVal)},
		types.TrackExtracted:  {value: extVal, result: validate.Field(ev, req, extVal)},
	}
}
