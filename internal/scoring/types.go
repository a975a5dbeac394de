// Package scoring aggregates per-event validation outcomes into
// severity-weighted compliance scores, letter grades, and the cross-standard
// composite. All computation is pure; nothing is shared between runs.
package scoring

// Caps on itemized output lists.
const (
	MaxViolations      = 100
	MaxRecommendations = 10
)

// TrackCoverage is the pass percentage for one requirement across the three
// value tracks. Raw and Extracted are diagnostic; the useRaw flag selects
// which track drives the score.
type TrackCoverage struct {
	Field      string  `json:"field"`
	SpecField  string  `json:"specField"`
	Severity   string  `json:"severity"`
	Normalized float64 `json:"normalized"`
	Raw        float64 `json:"raw"`
	Extracted  float64 `json:"extracted"`
}

// Violation records one failed requirement for one event, with all three
// track values retained for traceability.
type Violation struct {
	EventID         string `json:"eventId"`
	State           string `json:"state,omitempty"`
	Field           string `json:"field"`
	SpecField       string `json:"specField"`
	Severity        string `json:"severity"`
	Message         string `json:"message"`
	RawValue        any    `json:"rawValue,omitempty"`
	ExtractedValue  any    `json:"extractedValue,omitempty"`
	NormalizedValue any    `json:"normalizedValue,omitempty"`
}

// Recommendation surfaces a missing optional field, once per field, citing
// the first offending event.
type Recommendation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
	EventID     string `json:"eventId"`
}

// ComplianceResult is the scored outcome for one standard. Enhanced carries
// the same shape computed in lenient (normalized-track) mode.
type ComplianceResult struct {
	StandardID    string `json:"standardId"`
	StandardLabel string `json:"standardLabel"`
	ReferenceURL  string `json:"referenceUrl"`
	EventCount    int    `json:"eventCount"`
	Percentage    int    `json:"percentage"`
	Grade         string `json:"grade"`
	Status        string `json:"status"`

	WeightedScore     float64            `json:"weightedScore"`
	CriticalRatio     float64            `json:"criticalRatio"`
	SeverityBreakdown map[string]float64 `json:"severityBreakdown"`
	FieldCoverage     []TrackCoverage    `json:"fieldCoverage"`
	Violations        []Violation        `json:"violations"`
	Recommendations   []Recommendation   `json:"optionalRecommendations"`

	Enhanced *ComplianceResult `json:"enhanced,omitempty"`
}

// CompositeScore combines the three standards with fixed weights.
type CompositeScore struct {
	Percentage int                `json:"percentage"`
	Grade      string             `json:"grade"`
	Rank       string             `json:"rank"`
	Message    string             `json:"message"`
	Breakdown  []ComplianceResult `json:"breakdown,omitempty"`
	Enhanced   *CompositeScore    `json:"enhanced,omitempty"`
}
