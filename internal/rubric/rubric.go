// Package rubric holds the static catalog of data-interchange standards the
// engine scores against. The catalog is pure data: field requirements with
// lookup fallbacks, severities, and constraint hints, plus the severity and
// composite weight tables. It is built once at startup and never mutated.
package rubric

import (
	"fmt"

	"github.com/trafficlab/feedscore/internal/types"
)

// Constraint kind constants. A requirement carries at most one of format or
// validator; unknown kinds are a configuration error caught at startup.
const (
	FormatISO8601        = "iso8601"
	ValidatorCoordinates = "coordinates"
)

// Requirement is one checkable data point mandated (or, when Optional,
// recommended) by a standard.
type Requirement struct {
	Field       string   `json:"field"`
	Fallbacks   []string `json:"fallbackFields,omitempty"`
	SpecField   string   `json:"specField"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Optional    bool     `json:"optional,omitempty"`

	Enum      []string `json:"enum,omitempty"`
	Format    string   `json:"format,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
	Validator string   `json:"validator,omitempty"`
}

// Enhancement is an optional data point a feed can add beyond the
// requirements, surfaced as a recommendation when absent.
type Enhancement struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// StatusLabels is the standard-specific compliance status vocabulary.
type StatusLabels struct {
	Compliant    string `json:"compliant"`
	Partial      string `json:"partial"`
	NonCompliant string `json:"nonCompliant"`
}

// Standard is one published data-interchange standard with its ordered
// requirement rubric.
type Standard struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	ReferenceURL string        `json:"referenceUrl"`
	Requirements []Requirement `json:"requirements"`
	Enhancements []Enhancement `json:"enhancements,omitempty"`
	Labels       StatusLabels  `json:"statusLabels"`
}

// RequiredCount returns the number of non-optional requirements at the given
// severity.
func (s *Standard) RequiredCount(severity string) int {
	n := 0
	for _, req := range s.Requirements {
		if !req.Optional && req.Severity == severity {
			n++
		}
	}
	return n
}

// SeverityWeights drives the weighted aggregation across severities. The
// entries sum to 1.0, which registry validation enforces.
var SeverityWeights = map[string]float64{
	types.SeverityCritical: 0.6,
	types.SeverityHigh:     0.3,
	types.SeverityMedium:   0.1,
}

// CompositeWeights combines the per-standard percentages into one composite
// score.
var CompositeWeights = map[string]float64{
	StandardWZDx: 0.4,
	StandardSAE:  0.35,
	StandardTMDD: 0.25,
}

// Standard id constants.
const (
	StandardWZDx = "wzdx"
	StandardSAE  = "sae-j2735"
	StandardTMDD = "tmdd"
)

// Registry is the read-only catalog of standards, initialized once at
// process start.
type Registry struct {
	standards []Standard
	byID      map[string]*Standard
}

// NewRegistry builds the standard catalog and fails fast on any structural
// defect in the rubric data (unknown severity, unknown constraint kind,
// weights that do not sum to one).
func NewRegistry() (*Registry, error) {
	r := &Registry{
		standards: []Standard{wzdxStandard(), saeStandard(), tmddStandard()},
		byID:      make(map[string]*Standard),
	}
	for i := range r.standards {
		r.byID[r.standards[i].ID] = &r.standards[i]
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the standard with the given id, or an error for an unknown id.
func (r *Registry) Get(id string) (*Standard, error) {
	std, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown standard id: %q", id)
	}
	return std, nil
}

// All returns the standards in catalog order.
func (r *Registry) All() []Standard {
	return r.standards
}

func (r *Registry) validate() error {
	sum := 0.0
	for _, w := range SeverityWeights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("severity weights sum to %v, want 1.0", sum)
	}
	sum = 0.0
	for _, w := range CompositeWeights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("composite weights sum to %v, want 1.0", sum)
	}
	for _, std := range r.standards {
		if _, ok := CompositeWeights[std.ID]; !ok {
			return fmt.Errorf("standard %q has no composite weight", std.ID)
		}
		for _, req := range std.Requirements {
			if _, ok := SeverityWeights[req.Severity]; !ok {
				return fmt.Errorf("%s/%s: unknown severity %q", std.ID, req.Field, req.Severity)
			}
			if req.Format != "" && req.Format != FormatISO8601 {
				return fmt.Errorf("%s/%s: unknown format %q", std.ID, req.Field, req.Format)
			}
			if req.Validator != "" && req.Validator != ValidatorCoordinates {
				return fmt.Errorf("%s/%s: unknown validator %q", std.ID, req.Field, req.Validator)
			}
		}
	}
	return nil
}
