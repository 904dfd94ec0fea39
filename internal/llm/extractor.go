package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bharatvision/labelcheck/internal/cache"
	"github.com/bharatvision/labelcheck/internal/extract"
	"github.com/bharatvision/labelcheck/internal/model"
)

// ErrNoAnswers signals that the model replied but found none of the
// requested fields; the caller degrades to the pattern engine.
var ErrNoAnswers = errors.New("llm returned no field answers")

// Extractor is the model-backed field extractor. It produces the same
// per-field records the pattern engine does; availability decides which of
// the two runs, and exactly one of them produces the result for a call.
type Extractor struct {
	provider Provider
	cache    cache.Cache
	cacheTTL time.Duration
	limiter  *Limiter
}

// NewExtractor wraps a provider. Cache and limiter are optional; they only
// matter for batch runs where the same label text can repeat.
func NewExtractor(provider Provider, c cache.Cache, ttl time.Duration, limiter *Limiter) *Extractor {
	return &Extractor{
		provider: provider,
		cache:    c,
		cacheTTL: ttl,
		limiter:  limiter,
	}
}

// Available reports whether the model path can be attempted
func (e *Extractor) Available(ctx context.Context) bool {
	return e.provider != nil && e.provider.IsAvailable(ctx)
}

// Name returns the underlying provider name
func (e *Extractor) Name() string {
	if e.provider == nil {
		return ""
	}
	return e.provider.Name()
}

// Extract asks the model for every field the caller does not already know.
// Known values are filled verbatim and never sent to the model. Model
// answers pass the same sentinel/length acceptance rules as pattern matches.
func (e *Extractor) Extract(ctx context.Context, text string, known model.KnownFields) ([]model.FieldRecord, error) {
	if err := known.Validate(); err != nil {
		return nil, err
	}

	var wanted []model.FieldKind
	for _, f := range model.AllFields() {
		if v, ok := known[f]; !ok || strings.TrimSpace(v) == "" {
			wanted = append(wanted, f)
		}
	}

	values, err := e.extractValues(ctx, text, wanted)
	if err != nil {
		return nil, err
	}

	records := make([]model.FieldRecord, 0, 6)
	answered := 0
	for _, f := range model.AllFields() {
		if v, ok := known[f]; ok && strings.TrimSpace(v) != "" {
			records = append(records, model.FieldRecord{Field: f, Present: true, Value: strings.TrimSpace(v)})
			continue
		}
		if v, ok := extract.CleanValue(f, values[f]); ok {
			records = append(records, model.FieldRecord{Field: f, Present: true, Value: v})
			answered++
			continue
		}
		records = append(records, model.FieldRecord{Field: f, Present: false, Value: model.MissingValue})
	}

	if answered == 0 {
		return nil, ErrNoAnswers
	}
	return records, nil
}

// extractValues runs the provider call with cache and rate limiting around it
func (e *Extractor) extractValues(ctx context.Context, text string, fields []model.FieldKind) (map[model.FieldKind]string, error) {
	key := cache.Key(e.provider.Name() + ":" + text)

	if e.cache != nil {
		if data, found := e.cache.Get(key); found {
			var resp ExtractResponse
			if json.Unmarshal(data, &resp) == nil {
				return resp.Values, nil
			}
		}
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx, e.provider.Name()); err != nil {
			return nil, err
		}
	}

	resp, err := e.provider.ExtractFields(ctx, ExtractRequest{
		Text:   text,
		Fields: fields,
	})
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = e.cache.Set(key, data, e.cacheTTL)
		}
	}
	return resp.Values, nil
}
