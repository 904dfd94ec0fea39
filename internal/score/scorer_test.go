package score

import (
	"testing"

	"github.com/bharatvision/labelcheck/internal/model"
)

// makeRecords builds six records with the given fields present
func makeRecords(present ...model.FieldKind) []model.FieldRecord {
	isPresent := make(map[model.FieldKind]bool)
	for _, f := range present {
		isPresent[f] = true
	}
	records := make([]model.FieldRecord, 0, 6)
	for _, f := range model.AllFields() {
		r := model.FieldRecord{Field: f, Present: isPresent[f], Value: model.MissingValue}
		if r.Present {
			r.Value = "some value"
		}
		records = append(records, r)
	}
	return records
}

func TestEqualPolicy_AllPresent(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "")
	outcome := scorer.Calculate(makeRecords(model.AllFields()...), "")

	if outcome.Score != 100 {
		t.Errorf("Expected score 100, got %.2f", outcome.Score)
	}
	if outcome.Status != model.StatusCompliant {
		t.Errorf("Expected Compliant, got %s", outcome.Status)
	}
	if !outcome.Compliant {
		t.Error("Expected compliant")
	}
	if len(outcome.Issues) != 0 {
		t.Errorf("Expected no issues, got %d", len(outcome.Issues))
	}
}

func TestEqualPolicy_PartialPresence(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "")
	outcome := scorer.Calculate(makeRecords(
		model.FieldMRP, model.FieldNetQuantity,
		model.FieldManufacturer, model.FieldCountryOfOrigin,
	), "")

	// 4/6 of 100, rounded to two decimals
	if outcome.Score != 66.67 {
		t.Errorf("Expected score 66.67, got %.2f", outcome.Score)
	}
	if outcome.Status != model.StatusPartial {
		t.Errorf("Expected Partial, got %s", outcome.Status)
	}
	if outcome.Compliant {
		t.Error("Expected non-compliant: equal policy requires all six fields")
	}
	if len(outcome.Issues) != 2 {
		t.Errorf("Expected 2 issues, got %d", len(outcome.Issues))
	}
}

func TestEqualPolicy_FiveOfSixIsNotCompliant(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "")
	outcome := scorer.Calculate(makeRecords(
		model.FieldMRP, model.FieldNetQuantity, model.FieldManufacturer,
		model.FieldCountryOfOrigin, model.FieldDateOfManufacture,
	), "")

	if outcome.Score != 83.33 {
		t.Errorf("Expected score 83.33, got %.2f", outcome.Score)
	}
	if outcome.Compliant {
		t.Error("Expected non-compliant at 5/6 even though only a low-severity field is missing")
	}
}

func TestEqualPolicy_AllMissing(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "")
	outcome := scorer.Calculate(makeRecords(), "")

	if outcome.Score != 0 {
		t.Errorf("Expected score 0, got %.2f", outcome.Score)
	}
	if outcome.Status != model.StatusNonCompliant {
		t.Errorf("Expected Non-Compliant, got %s", outcome.Status)
	}
	if len(outcome.Issues) != 6 {
		t.Errorf("Expected 6 issues, got %d", len(outcome.Issues))
	}
}

func TestWeightedPolicy_Penalties(t *testing.T) {
	scorer := NewScorer(model.PolicyWeighted, "")

	// Missing consumer care only: 100 - 5
	outcome := scorer.Calculate(makeRecords(
		model.FieldMRP, model.FieldNetQuantity, model.FieldManufacturer,
		model.FieldDateOfManufacture, model.FieldCountryOfOrigin,
	), "")
	if outcome.Score != 95 {
		t.Errorf("Expected score 95, got %.2f", outcome.Score)
	}
	if !outcome.Compliant {
		t.Error("Expected compliant: no critical issue and score above threshold")
	}
	if outcome.Status != model.StatusCompliant {
		t.Errorf("Expected Compliant, got %s", outcome.Status)
	}
}

func TestWeightedPolicy_CriticalBlocksCompliance(t *testing.T) {
	scorer := NewScorer(model.PolicyWeighted, "")

	// Missing MRP: 100 - 15 = 85, but MRP is critical
	outcome := scorer.Calculate(makeRecords(
		model.FieldNetQuantity, model.FieldManufacturer,
		model.FieldDateOfManufacture, model.FieldCountryOfOrigin,
		model.FieldConsumerCare,
	), "")
	if outcome.Score != 85 {
		t.Errorf("Expected score 85, got %.2f", outcome.Score)
	}
	if outcome.Compliant {
		t.Error("Expected non-compliant: a critical declaration is missing")
	}
	// The status tier follows the score alone
	if outcome.Status != model.StatusCompliant {
		t.Errorf("Expected status Compliant from score tier, got %s", outcome.Status)
	}
}

func TestWeightedPolicy_AllMissing(t *testing.T) {
	scorer := NewScorer(model.PolicyWeighted, "")
	outcome := scorer.Calculate(makeRecords(), "")

	// 100 - (15+20+10+5+10+5) = 35
	if outcome.Score != 35 {
		t.Errorf("Expected score 35, got %.2f", outcome.Score)
	}
	if outcome.Status != model.StatusNonCompliant {
		t.Errorf("Expected Non-Compliant, got %s", outcome.Status)
	}
	if outcome.Compliant {
		t.Error("Expected non-compliant")
	}
}

func TestWeightedPolicy_IngredientsCheck(t *testing.T) {
	scorer := NewScorer(model.PolicyWeighted, "Food")

	outcome := scorer.Calculate(makeRecords(model.AllFields()...), "mrp: 120 net qty: 500g")
	if outcome.Score != 90 {
		t.Errorf("Expected score 90 after ingredients deduction, got %.2f", outcome.Score)
	}
	found := false
	for _, iss := range outcome.Issues {
		if iss.RuleID == "ING_001" {
			found = true
			if iss.Field != "" {
				t.Errorf("Expected fieldless category warning, got field %s", iss.Field)
			}
			if iss.Severity != model.SeverityLow {
				t.Errorf("Expected low severity, got %s", iss.Severity)
			}
		}
	}
	if !found {
		t.Error("Expected ING_001 issue for food product without ingredients list")
	}

	// The deduction does not apply when the text declares ingredients
	outcome = scorer.Calculate(makeRecords(model.AllFields()...), "Ingredients: rice, salt")
	if outcome.Score != 100 {
		t.Errorf("Expected score 100, got %.2f", outcome.Score)
	}

	// Nor for non-food categories
	scorer = NewScorer(model.PolicyWeighted, "electronics")
	outcome = scorer.Calculate(makeRecords(model.AllFields()...), "")
	if outcome.Score != 100 {
		t.Errorf("Expected score 100 for non-food category, got %.2f", outcome.Score)
	}
}

func TestEqualPolicy_IgnoresCategory(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "food")
	outcome := scorer.Calculate(makeRecords(model.AllFields()...), "no ingredients here at all")

	if outcome.Score != 100 {
		t.Errorf("Expected equal policy to ignore the ingredients check, got %.2f", outcome.Score)
	}
}

func TestSeveritiesAndRuleIDs(t *testing.T) {
	scorer := NewScorer(model.PolicyEqualWeight, "")
	outcome := scorer.Calculate(makeRecords(), "")

	want := map[model.FieldKind]struct {
		severity model.Severity
		ruleID   string
	}{
		model.FieldMRP:               {model.SeverityCritical, "MRP_001"},
		model.FieldNetQuantity:       {model.SeverityCritical, "QTY_001"},
		model.FieldManufacturer:      {model.SeverityHigh, "MFR_001"},
		model.FieldDateOfManufacture: {model.SeverityMedium, "DATE_001"},
		model.FieldCountryOfOrigin:   {model.SeverityMedium, "ORIGIN_001"},
		model.FieldConsumerCare:      {model.SeverityLow, "CARE_001"},
	}
	for _, iss := range outcome.Issues {
		w, ok := want[iss.Field]
		if !ok {
			t.Errorf("Unexpected issue field %s", iss.Field)
			continue
		}
		if iss.Severity != w.severity {
			t.Errorf("%s: expected severity %s, got %s", iss.Field, w.severity, iss.Severity)
		}
		if iss.RuleID != w.ruleID {
			t.Errorf("%s: expected rule %s, got %s", iss.Field, w.ruleID, iss.RuleID)
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	for _, policy := range []string{model.PolicyEqualWeight, model.PolicyWeighted} {
		scorer := NewScorer(policy, "")
		prev := -1.0
		fields := model.AllFields()
		for n := 0; n <= len(fields); n++ {
			outcome := scorer.Calculate(makeRecords(fields[:n]...), "")
			if outcome.Score < prev {
				t.Errorf("%s: score decreased when adding field %d: %.2f < %.2f", policy, n, outcome.Score, prev)
			}
			if outcome.Score < 0 || outcome.Score > 100 {
				t.Errorf("%s: score out of range: %.2f", policy, outcome.Score)
			}
			prev = outcome.Score
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-12); got != 0 {
		t.Errorf("Expected 0, got %.2f", got)
	}
	if got := clamp(104); got != 100 {
		t.Errorf("Expected 100, got %.2f", got)
	}
	if got := clamp(57.5); got != 57.5 {
		t.Errorf("Expected 57.5, got %.2f", got)
	}
}

func TestUnknownPolicyFallsBackToEqual(t *testing.T) {
	scorer := NewScorer("bogus", "")
	if scorer.Policy() != model.PolicyEqualWeight {
		t.Errorf("Expected fallback to equal, got %s", scorer.Policy())
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(makeRecords(model.FieldMRP, model.FieldNetQuantity)); got != "2/6 fields found" {
		t.Errorf("Expected \"2/6 fields found\", got %q", got)
	}
	if got := Summarize(makeRecords()); got != "0/6 fields found" {
		t.Errorf("Expected \"0/6 fields found\", got %q", got)
	}
}
