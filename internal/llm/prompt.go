package llm

import (
	"fmt"
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// maxPromptText caps how much label text goes into the prompt; OCR dumps of
// full product pages can be very long
const maxPromptText = 5000

const systemPrompt = "You are an expert Legal Metrology auditor that extracts mandatory declarations from Indian product label text with strict JSON-only output."

// fieldHint returns the per-field extraction guidance embedded in the prompt
func fieldHint(field model.FieldKind) string {
	switch field {
	case model.FieldManufacturer:
		return `"manufacturer": look for "Mfd By", "Manufactured by", "Packed by", "Marketed by", or address blocks`
	case model.FieldNetQuantity:
		return `"net_quantity": look for "Net Qty", "Net Weight", "Vol", "N.W.", followed by number and unit (g, kg, ml, L)`
	case model.FieldMRP:
		return `"mrp": look for "MRP", "Price", "Rs.", "₹" (inclusive of all taxes)`
	case model.FieldDateOfManufacture:
		return `"date_of_manufacture": look for "Pkd", "Use By", "Expiry", "Mfg Date" (DD/MM/YYYY or MM/YY)`
	case model.FieldConsumerCare:
		return `"consumer_care": look for "Customer Care", "Feedback", "Complaint", email ID or phone numbers`
	case model.FieldCountryOfOrigin:
		return `"country_of_origin": look for "Made in", "Product of", "Country of Origin"`
	default:
		return ""
	}
}

// BuildPrompt constructs the extraction prompt for the requested fields.
// The model must answer with a single JSON object keyed by field name; null
// means strictly not found.
func BuildPrompt(text string, fields []model.FieldKind) string {
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}

	names := make([]string, 0, len(fields))
	var hints strings.Builder
	for _, f := range fields {
		names = append(names, string(f))
		if h := fieldHint(f); h != "" {
			hints.WriteString("- ")
			hints.WriteString(h)
			hints.WriteString("\n")
		}
	}

	return fmt.Sprintf(`Your task is to extract specific mandatory declarations from product label text.
The OCR text might be messy, unordered, or contain noise.

Target fields to extract: %s

Extraction rules:
%s
Raw label text:
"""
%s
"""

Instructions:
- Analyze the text carefully.
- If a value is split across lines, join them.
- Return the result as a single valid JSON object keyed by the field names above.
- If a field is strictly NOT found, use null.
- Output JSON ONLY, no commentary.`, strings.Join(names, ", "), hints.String(), text)
}
