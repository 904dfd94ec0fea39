package llm

import (
	"testing"

	"github.com/bharatvision/labelcheck/internal/model"
)

func TestParseReply_PlainJSON(t *testing.T) {
	reply := `{"mrp": "₹120", "net_quantity": "500g", "country_of_origin": "India"}`

	values, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if values[model.FieldMRP] != "₹120" {
		t.Errorf("Expected ₹120, got %q", values[model.FieldMRP])
	}
	if values[model.FieldNetQuantity] != "500g" {
		t.Errorf("Expected 500g, got %q", values[model.FieldNetQuantity])
	}
	if values[model.FieldCountryOfOrigin] != "India" {
		t.Errorf("Expected India, got %q", values[model.FieldCountryOfOrigin])
	}
}

func TestParseReply_CodeFences(t *testing.T) {
	reply := "Here is the extraction:\n```json\n{\"mrp\": \"45\"}\n```\nLet me know if you need more."

	values, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if values[model.FieldMRP] != "45" {
		t.Errorf("Expected 45, got %q", values[model.FieldMRP])
	}
}

func TestParseReply_NullsAndUnknownKeys(t *testing.T) {
	reply := `{
		"mrp": null,
		"net_quantity": "1kg",
		"brand_name": "Acme",
		"consumer_care": "None"
	}`

	values, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := values[model.FieldMRP]; ok {
		t.Error("Expected null MRP to be dropped")
	}
	if _, ok := values[model.FieldConsumerCare]; ok {
		t.Error("Expected string \"None\" to be treated as null")
	}
	if values[model.FieldNetQuantity] != "1kg" {
		t.Errorf("Expected 1kg, got %q", values[model.FieldNetQuantity])
	}
	if len(values) != 1 {
		t.Errorf("Expected exactly 1 value, got %d", len(values))
	}
}

func TestParseReply_KeyAliases(t *testing.T) {
	reply := `{"made_in": "India", "mfg_date": "01/2024", "customer care": "1800 123 4567", "price": 99.5}`

	values, err := ParseReply(reply)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if values[model.FieldCountryOfOrigin] != "India" {
		t.Errorf("Expected made_in to map to country, got %q", values[model.FieldCountryOfOrigin])
	}
	if values[model.FieldDateOfManufacture] != "01/2024" {
		t.Errorf("Expected mfg_date to map to date, got %q", values[model.FieldDateOfManufacture])
	}
	if values[model.FieldConsumerCare] != "1800 123 4567" {
		t.Errorf("Expected spaced key to canonicalize, got %q", values[model.FieldConsumerCare])
	}
	// Numbers are coerced to strings
	if values[model.FieldMRP] != "99.5" {
		t.Errorf("Expected numeric price coerced to 99.5, got %q", values[model.FieldMRP])
	}
}

func TestParseReply_NoJSON(t *testing.T) {
	if _, err := ParseReply("I could not find any fields in the text."); err == nil {
		t.Fatal("Expected error for reply without JSON")
	}
	if _, err := ParseReply(""); err == nil {
		t.Fatal("Expected error for empty reply")
	}
}

func TestParseReply_MalformedJSON(t *testing.T) {
	if _, err := ParseReply(`{"mrp": "120",}`); err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}
