package model

import "time"

// Severity ranks how serious a missing declaration is. The assignment is
// fixed per field by policy, never computed from text.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Issue describes one compliance problem found by the scorer
type Issue struct {
	Field    FieldKind `json:"field,omitempty"` // Empty for category-level warnings
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	RuleID   string    `json:"rule_id,omitempty"` // e.g. MRP_001
}

// Status is the three-tier compliance verdict consumed by presentation layers
type Status string

const (
	StatusCompliant    Status = "Compliant"
	StatusPartial      Status = "Partial"
	StatusNonCompliant Status = "Non-Compliant"
)

// Status thresholds shared by both scoring policies. Stable external contract.
const (
	CompliantThreshold = 85.0
	PartialThreshold   = 60.0
)

// StatusForScore maps a 0-100 score onto the three tiers
func StatusForScore(score float64) Status {
	switch {
	case score >= CompliantThreshold:
		return StatusCompliant
	case score >= PartialThreshold:
		return StatusPartial
	default:
		return StatusNonCompliant
	}
}

// Color returns the fixed badge color for dashboards
func (s Status) Color() string {
	switch s {
	case StatusCompliant:
		return "green"
	case StatusPartial:
		return "yellow"
	default:
		return "red"
	}
}

// Result is the complete outcome of one compliance check. It is returned by
// value and never retained by the engine; identical inputs yield identical
// results.
type Result struct {
	Fields    []FieldRecord `json:"fields"`              // One record per mandatory field, extraction order
	Score     float64       `json:"compliance_score"`    // Always within [0, 100]
	Status    Status        `json:"status"`
	Compliant bool          `json:"compliant"`           // Policy-specific compliance predicate
	Color     string        `json:"color"`
	Summary   string        `json:"summary"`             // e.g. "4/6 fields found"
	Issues    []Issue       `json:"issues,omitempty"`
	Policy    string        `json:"policy"`              // Scoring policy that produced the score
	Source    string        `json:"source"`              // "patterns" or "llm"
	CheckedAt time.Time     `json:"checked_at,omitempty"`
}

// Record returns the record for a field, or a missing record if absent
func (r *Result) Record(k FieldKind) FieldRecord {
	for _, fr := range r.Fields {
		if fr.Field == k {
			return fr
		}
	}
	return FieldRecord{Field: k, Present: false, Value: MissingValue}
}

// PresentCount counts fields with an accepted value
func (r *Result) PresentCount() int {
	n := 0
	for _, fr := range r.Fields {
		if fr.Present {
			n++
		}
	}
	return n
}
