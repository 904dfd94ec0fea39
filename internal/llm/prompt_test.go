package llm

import (
	"strings"
	"testing"

	"github.com/bharatvision/labelcheck/internal/model"
)

func TestBuildPrompt_IncludesFieldsAndText(t *testing.T) {
	fields := []model.FieldKind{model.FieldMRP, model.FieldCountryOfOrigin}
	prompt := BuildPrompt("MRP: ₹99 Made in India", fields)

	if !strings.Contains(prompt, "mrp, country_of_origin") {
		t.Error("Expected prompt to list the requested fields")
	}
	if !strings.Contains(prompt, "MRP: ₹99 Made in India") {
		t.Error("Expected prompt to embed the label text")
	}
	if !strings.Contains(prompt, "JSON") {
		t.Error("Expected prompt to demand JSON output")
	}
	if !strings.Contains(prompt, "null") {
		t.Error("Expected prompt to explain the null convention")
	}
	// Hints only for the requested fields
	if !strings.Contains(prompt, `"mrp"`) {
		t.Error("Expected MRP hint")
	}
	if strings.Contains(prompt, `"net_quantity"`) {
		t.Error("Did not expect a hint for an unrequested field")
	}
}

func TestBuildPrompt_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("#", 3*maxPromptText)
	prompt := BuildPrompt(long, model.AllFields())

	if len(prompt) > maxPromptText+2000 {
		t.Errorf("Expected label text truncated near %d chars, prompt is %d", maxPromptText, len(prompt))
	}
	if strings.Count(prompt, "#") != maxPromptText {
		t.Errorf("Expected exactly %d chars of label text, got %d", maxPromptText, strings.Count(prompt, "#"))
	}
}
