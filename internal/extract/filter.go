package extract

import (
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// sentinels are placeholder strings manufacturers print where a declaration
// would go. The generic fallback patterns will happily match literal sentinel
// text, so any candidate containing one must count as missing, not as
// present-with-garbage-value. Single shared list for all fields.
var sentinels = []string{
	"na", "n/a", "not applicable", "not mentioned",
	"not available", "—", "nil", "none",
}

// minLength is the per-field minimum accepted value length, strictly greater.
// Fields absent here rely on what their patterns already enforce.
var minLength = map[model.FieldKind]int{
	model.FieldManufacturer:    10,
	model.FieldCountryOfOrigin: 2,
	model.FieldConsumerCare:    5,
}

// maxLength is the per-field truncation cap applied after acceptance
var maxLength = map[model.FieldKind]int{
	model.FieldManufacturer:      150,
	model.FieldDateOfManufacture: 50,
	model.FieldCountryOfOrigin:   50,
	model.FieldConsumerCare:      150,
}

// Accepts decides whether a raw pattern match should be promoted to a final
// value. The candidate is expected to be already lower-cased and trimmed.
func Accepts(field model.FieldKind, value string) bool {
	if value == "" {
		return false
	}
	for _, s := range sentinels {
		if strings.Contains(value, s) {
			return false
		}
	}
	if min, ok := minLength[field]; ok && len(value) <= min {
		return false
	}
	return true
}

// CleanValue applies the acceptance filter and length cap to a candidate
// produced outside the pattern cascade (the LLM path emits values that must
// honor the same sentinel and length rules). Returns false when the value
// must count as missing.
func CleanValue(field model.FieldKind, value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !Accepts(field, strings.ToLower(v)) {
		return "", false
	}
	return capValue(field, v), true
}

// capValue truncates an accepted value to the field's length cap
func capValue(field model.FieldKind, value string) string {
	if max, ok := maxLength[field]; ok && len(value) > max {
		return value[:max]
	}
	return value
}
