package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bharatvision/labelcheck/internal/cache"
	"github.com/bharatvision/labelcheck/internal/model"
)

// fakeProvider is a scripted Provider for extractor tests
type fakeProvider struct {
	values    map[model.FieldKind]string
	err       error
	available bool
	calls     int
	lastReq   ExtractRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeProvider) ExtractFields(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &ExtractResponse{Values: f.values, Model: "fake-1"}, nil
}

func TestExtractor_Records(t *testing.T) {
	provider := &fakeProvider{
		available: true,
		values: map[model.FieldKind]string{
			model.FieldMRP:             "₹120",
			model.FieldNetQuantity:     "500g",
			model.FieldCountryOfOrigin: "India",
		},
	}
	ex := NewExtractor(provider, nil, 0, nil)

	records, err := ex.Extract(context.Background(), "label text", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("Expected 6 records, got %d", len(records))
	}

	present := 0
	for _, r := range records {
		if r.Present {
			present++
			continue
		}
		if r.Value != model.MissingValue {
			t.Errorf("%s: expected %q for missing field, got %q", r.Field, model.MissingValue, r.Value)
		}
	}
	if present != 3 {
		t.Errorf("Expected 3 present fields, got %d", present)
	}
}

func TestExtractor_AnswersPassAcceptanceRules(t *testing.T) {
	// Model answers must honor the same sentinel and length rules as
	// pattern matches
	provider := &fakeProvider{
		available: true,
		values: map[model.FieldKind]string{
			model.FieldMRP:          "₹120",
			model.FieldConsumerCare: "N/A",
			model.FieldManufacturer: "too short",
		},
	}
	ex := NewExtractor(provider, nil, 0, nil)

	records, err := ex.Extract(context.Background(), "label text", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, r := range records {
		switch r.Field {
		case model.FieldMRP:
			if !r.Present {
				t.Error("Expected MRP present")
			}
		case model.FieldConsumerCare, model.FieldManufacturer:
			if r.Present {
				t.Errorf("%s: expected filtered answer to count as missing, got %q", r.Field, r.Value)
			}
		}
	}
}

func TestExtractor_NoAnswers(t *testing.T) {
	provider := &fakeProvider{available: true, values: map[model.FieldKind]string{}}
	ex := NewExtractor(provider, nil, 0, nil)

	_, err := ex.Extract(context.Background(), "label text", nil)
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("Expected ErrNoAnswers, got %v", err)
	}

	// All answers rejected by the acceptance filter is the same outcome
	provider.values = map[model.FieldKind]string{model.FieldConsumerCare: "n/a"}
	if _, err := ex.Extract(context.Background(), "label text", nil); !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("Expected ErrNoAnswers for all-rejected answers, got %v", err)
	}
}

func TestExtractor_ProviderError(t *testing.T) {
	provider := &fakeProvider{available: true, err: errors.New("rate limited")}
	ex := NewExtractor(provider, nil, 0, nil)

	if _, err := ex.Extract(context.Background(), "label text", nil); err == nil {
		t.Fatal("Expected provider error to propagate")
	}
}

func TestExtractor_KnownFieldsSkipModel(t *testing.T) {
	provider := &fakeProvider{
		available: true,
		values:    map[model.FieldKind]string{model.FieldNetQuantity: "500g"},
	}
	ex := NewExtractor(provider, nil, 0, nil)

	known := model.KnownFields{model.FieldMRP: "Rs. 99/-"}
	records, err := ex.Extract(context.Background(), "label text", known)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, f := range provider.lastReq.Fields {
		if f == model.FieldMRP {
			t.Error("Expected known field to be excluded from the model request")
		}
	}
	if len(provider.lastReq.Fields) != 5 {
		t.Errorf("Expected 5 requested fields, got %d", len(provider.lastReq.Fields))
	}

	for _, r := range records {
		if r.Field == model.FieldMRP {
			if !r.Present || r.Value != "Rs. 99/-" {
				t.Errorf("Expected verbatim known MRP, got present=%v value=%q", r.Present, r.Value)
			}
		}
	}
}

func TestExtractor_CacheAvoidsSecondCall(t *testing.T) {
	provider := &fakeProvider{
		available: true,
		values:    map[model.FieldKind]string{model.FieldMRP: "₹80"},
	}
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	ex := NewExtractor(provider, c, time.Minute, nil)

	if _, err := ex.Extract(context.Background(), "same label", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := ex.Extract(context.Background(), "same label", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call with cache, got %d", provider.calls)
	}

	// A different label misses the cache
	if _, err := ex.Extract(context.Background(), "other label", nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("Expected 2 provider calls, got %d", provider.calls)
	}
}

func TestExtractor_Availability(t *testing.T) {
	provider := &fakeProvider{available: false}
	ex := NewExtractor(provider, nil, 0, nil)
	if ex.Available(context.Background()) {
		t.Error("Expected unavailable")
	}

	provider.available = true
	if !ex.Available(context.Background()) {
		t.Error("Expected available")
	}
	if ex.Name() != "fake" {
		t.Errorf("Expected provider name fake, got %q", ex.Name())
	}
}
