package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// keyAliases maps the field name variations models tend to return onto the
// canonical field kinds
var keyAliases = map[string]model.FieldKind{
	"manufacturer":         model.FieldManufacturer,
	"manufacturer_details": model.FieldManufacturer,
	"manufactured_by":      model.FieldManufacturer,
	"packer":               model.FieldManufacturer,
	"net_quantity":         model.FieldNetQuantity,
	"net_qty":              model.FieldNetQuantity,
	"quantity":             model.FieldNetQuantity,
	"net_weight":           model.FieldNetQuantity,
	"mrp":                  model.FieldMRP,
	"price":                model.FieldMRP,
	"maximum_retail_price": model.FieldMRP,
	"consumer_care":        model.FieldConsumerCare,
	"customer_care":        model.FieldConsumerCare,
	"customer_care_details": model.FieldConsumerCare,
	"helpline":             model.FieldConsumerCare,
	"date_of_manufacture":  model.FieldDateOfManufacture,
	"mfg_date":             model.FieldDateOfManufacture,
	"manufacturing_date":   model.FieldDateOfManufacture,
	"expiry_date":          model.FieldDateOfManufacture,
	"best_before":          model.FieldDateOfManufacture,
	"country_of_origin":    model.FieldCountryOfOrigin,
	"country":              model.FieldCountryOfOrigin,
	"made_in":              model.FieldCountryOfOrigin,
	"origin":               model.FieldCountryOfOrigin,
}

// ParseReply leniently decodes the model's JSON reply into field values.
// Models wrap JSON in code fences, return nulls for absent fields, numbers
// where strings are expected and slightly different key names; all of that
// is tolerated. A reply with no parsable JSON object is an error.
func ParseReply(reply string) (map[model.FieldKind]string, error) {
	doc := extractJSON(reply)
	if doc == "" {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}

	values := make(map[model.FieldKind]string)
	for k, v := range raw {
		field, ok := canonicalField(k)
		if !ok {
			continue // unknown keys are dropped, not errors
		}
		s, ok := coerceString(v)
		if !ok || s == "" {
			continue
		}
		// models occasionally echo the null-marker as a string
		if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
			continue
		}
		if _, exists := values[field]; !exists {
			values[field] = s
		}
	}
	return values, nil
}

// extractJSON pulls the first top-level JSON object out of a reply that may
// be wrapped in markdown code fences or prose
func extractJSON(reply string) string {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return ""
	}
	return reply[start : end+1]
}

func canonicalField(key string) (model.FieldKind, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, " ", "_")
	field, ok := keyAliases[k]
	return field, ok
}

// coerceString accepts strings and numbers; anything else is dropped
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return "", false
	default:
		return "", false
	}
}
