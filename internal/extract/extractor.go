package extract

import (
	"strings"

	"github.com/bharatvision/labelcheck/internal/model"
)

// Engine is the deterministic pattern-backed field extractor. It is a pure
// computation: no I/O, no hidden state, no caching between calls. A single
// Engine is safe to share across any number of concurrent invocations.
type Engine struct {
	library Library
}

// NewEngine creates an engine with the default pattern library
func NewEngine() *Engine {
	return &Engine{library: DefaultLibrary()}
}

// Extract produces one FieldRecord per mandatory field, in the fixed field
// order. Known values short-circuit pattern matching for their field only;
// the returned error is reserved for caller misuse (unrecognized known-field
// key). Empty text degrades to all fields missing, never to an error.
func (e *Engine) Extract(text string, known model.KnownFields) ([]model.FieldRecord, error) {
	if err := known.Validate(); err != nil {
		return nil, err
	}

	// Lower-case and trim; nothing else is mutated before matching. Case
	// and whitespace variance in OCR output is why matching must be
	// case-insensitive.
	normalized := strings.ToLower(strings.TrimSpace(text))

	records := make([]model.FieldRecord, 0, 6)
	for _, field := range model.AllFields() {
		records = append(records, e.extractField(field, normalized, known))
	}
	return records, nil
}

// extractField runs the per-field algorithm: known-value override first,
// then the pattern cascade, first-accepted-match wins.
func (e *Engine) extractField(field model.FieldKind, text string, known model.KnownFields) model.FieldRecord {
	// A known value is strictly more trustworthy than text mined from a
	// label image: accept it verbatim, no patterns, no acceptance filter.
	if v, ok := known[field]; ok && strings.TrimSpace(v) != "" {
		return model.FieldRecord{Field: field, Present: true, Value: strings.TrimSpace(v)}
	}

	for _, p := range e.library.PatternsFor(field) {
		value := strings.TrimSpace(p.Match(text))
		if value == "" {
			continue
		}
		if !Accepts(field, value) {
			// A rejected candidate does not stop the cascade; a later,
			// more generic pattern may still find a real value elsewhere.
			continue
		}
		if field == model.FieldMRP {
			value = "₹" + value
		}
		return model.FieldRecord{Field: field, Present: true, Value: capValue(field, value)}
	}

	return model.FieldRecord{Field: field, Present: false, Value: model.MissingValue}
}
