package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// Scorer turns six field records into a score, a status tier and a list of
// severity-tagged issues. Two scoring policies coexist deliberately and are
// never merged: downstream callers may depend on either behavior.
type Scorer struct {
	policy   string
	category string
}

// NewScorer creates a scorer for the given policy ("equal" or "weighted").
// An unrecognized policy falls back to equal-weight.
func NewScorer(policy, category string) *Scorer {
	if policy != model.PolicyWeighted {
		policy = model.PolicyEqualWeight
	}
	return &Scorer{policy: policy, category: strings.ToLower(category)}
}

// Policy returns the active policy name
func (s *Scorer) Policy() string {
	return s.policy
}

// severityFor is the fixed per-field severity assignment. It is policy,
// never computed from text.
func severityFor(field model.FieldKind) model.Severity {
	switch field {
	case model.FieldMRP, model.FieldNetQuantity:
		return model.SeverityCritical
	case model.FieldManufacturer:
		return model.SeverityHigh
	case model.FieldCountryOfOrigin, model.FieldDateOfManufacture:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// ruleIDFor tags issues with the rule identifiers used in audit reports
func ruleIDFor(field model.FieldKind) string {
	switch field {
	case model.FieldMRP:
		return "MRP_001"
	case model.FieldNetQuantity:
		return "QTY_001"
	case model.FieldManufacturer:
		return "MFR_001"
	case model.FieldDateOfManufacture:
		return "DATE_001"
	case model.FieldCountryOfOrigin:
		return "ORIGIN_001"
	case model.FieldConsumerCare:
		return "CARE_001"
	default:
		return ""
	}
}

// weightedPenalty is the per-field deduction under the weighted policy
var weightedPenalty = map[model.FieldKind]float64{
	model.FieldMRP:               15,
	model.FieldNetQuantity:       20,
	model.FieldManufacturer:      10,
	model.FieldDateOfManufacture: 5,
	model.FieldCountryOfOrigin:   10,
	model.FieldConsumerCare:      5,
}

// ingredientCategories are the categories for which a missing ingredients
// list draws an additional deduction under the weighted policy
var ingredientCategories = []string{"food", "beverage", "snack"}

// Outcome is the aggregate the scorer produces for one label
type Outcome struct {
	Score     float64
	Status    model.Status
	Compliant bool
	Issues    []model.Issue
}

// Calculate aggregates the field records. The score is clamped to [0, 100]
// explicitly: stacking category-conditional penalties can otherwise drive it
// negative. All-missing input scores the policy minimum; it never errors.
func (s *Scorer) Calculate(records []model.FieldRecord, text string) Outcome {
	var issues []model.Issue
	for _, r := range records {
		if r.Present {
			continue
		}
		issues = append(issues, model.Issue{
			Field:    r.Field,
			Severity: severityFor(r.Field),
			Message:  fmt.Sprintf("%s is missing", r.Field.Label()),
			RuleID:   ruleIDFor(r.Field),
		})
	}

	var score float64
	var compliant bool
	switch s.policy {
	case model.PolicyWeighted:
		score = 100
		for _, iss := range issues {
			score -= weightedPenalty[iss.Field]
		}
		if iss, ok := s.checkIngredients(text); ok {
			issues = append(issues, iss)
			score -= 10
		}
		score = clamp(score)
		compliant = !hasCritical(issues) && score >= model.PartialThreshold
	default:
		if n := len(records); n > 0 {
			present := 0
			for _, r := range records {
				if r.Present {
					present++
				}
			}
			score = float64(present) / float64(n) * 100
		}
		score = clamp(math.Round(score*100) / 100)
		compliant = len(issues) == 0
	}

	return Outcome{
		Score:     score,
		Status:    model.StatusForScore(score),
		Compliant: compliant,
		Issues:    issues,
	}
}

// checkIngredients is the category-conditional check carried over from the
// rules engine: food-adjacent products must also declare an ingredients list.
// The resulting issue has no field; it is a category warning, not one of the
// six mandatory declarations.
func (s *Scorer) checkIngredients(text string) (model.Issue, bool) {
	if s.category == "" {
		return model.Issue{}, false
	}
	applies := false
	for _, c := range ingredientCategories {
		if strings.Contains(s.category, c) {
			applies = true
			break
		}
	}
	if !applies || strings.Contains(strings.ToLower(text), "ingredient") {
		return model.Issue{}, false
	}
	return model.Issue{
		Severity: model.SeverityLow,
		Message:  "Ingredients list not found for food category product",
		RuleID:   "ING_001",
	}, true
}

func hasCritical(issues []model.Issue) bool {
	for _, iss := range issues {
		if iss.Severity == model.SeverityCritical {
			return true
		}
	}
	return false
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Summarize renders the short human-readable summary string,
// e.g. "4/6 fields found"
func Summarize(records []model.FieldRecord) string {
	present := 0
	for _, r := range records {
		if r.Present {
			present++
		}
	}
	return fmt.Sprintf("%d/%d fields found", present, len(records))
}
