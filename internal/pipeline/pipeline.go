package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bharatvision/labelcheck/internal/cache"
	"github.com/bharatvision/labelcheck/internal/extract"
	"github.com/bharatvision/labelcheck/internal/llm"
	"github.com/bharatvision/labelcheck/internal/model"
	"github.com/bharatvision/labelcheck/internal/score"
)

// Input is one label to check: raw text plus optional structured hints
type Input struct {
	// Text is the free-form, possibly OCR-derived label text; may be empty
	Text string

	// Known maps fields to values the caller already knows with certainty
	Known model.KnownFields

	// Category enables category-conditional checks (weighted policy)
	Category string
}

// Checker orchestrates one compliance check: extraction (model-backed when
// available, pattern-backed otherwise — never both) followed by scoring.
type Checker struct {
	engine   *extract.Engine
	scorer   *score.Scorer
	llmEx    *llm.Extractor // nil when the LLM path is disabled
	renderer *Renderer
	verbose  bool
}

// NewChecker creates a checker from configuration. A broken LLM setup is a
// warning, not a failure: the pattern engine must always be able to run.
func NewChecker(cfg *model.Config) *Checker {
	c := &Checker{
		engine:   extract.NewEngine(),
		scorer:   score.NewScorer(cfg.Scoring.Policy, cfg.Scoring.Category),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		verbose:  cfg.Output.Verbose,
	}

	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			c.llmEx = llm.NewExtractor(provider, newLLMCache(cfg), time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
				llm.NewLimiter(cfg.LLM.RatePerSecond, 0))
		}
	}
	return c
}

// newLLMCache builds the response cache for the LLM path, or nil when
// disabled
func newLLMCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	home, err := os.UserHomeDir()
	if err != nil {
		return cache.NewMemoryCache(ttl, 10*time.Minute)
	}
	return cache.NewLayeredCache(ttl, filepath.Join(home, ".labelcheck", "cache"), ttl)
}

// Check runs the full check for one label. Exactly one extraction path
// produces the records; partial results are never blended across paths.
func (c *Checker) Check(ctx context.Context, in Input) (*model.Result, error) {
	if err := in.Known.Validate(); err != nil {
		return nil, err
	}

	records, source := c.extractRecords(ctx, in)

	// A per-label category overrides the configured one
	scorer := c.scorer
	if in.Category != "" {
		scorer = score.NewScorer(c.scorer.Policy(), in.Category)
	}
	outcome := scorer.Calculate(records, in.Text)

	return &model.Result{
		Fields:    records,
		Score:     outcome.Score,
		Status:    outcome.Status,
		Color:     outcome.Status.Color(),
		Compliant: outcome.Compliant,
		Summary:   score.Summarize(records),
		Issues:    outcome.Issues,
		Policy:    c.scorer.Policy(),
		Source:    source,
		CheckedAt: time.Now().UTC(),
	}, nil
}

// extractRecords tries the model path first when configured and available,
// degrading to the always-correct pattern engine on any failure, timeout or
// empty answer set
func (c *Checker) extractRecords(ctx context.Context, in Input) ([]model.FieldRecord, string) {
	if c.llmEx != nil && c.llmEx.Available(ctx) {
		records, err := c.llmEx.Extract(ctx, in.Text, in.Known)
		if err == nil {
			return records, "llm"
		}
		if c.verbose {
			if errors.Is(err, llm.ErrNoAnswers) {
				fmt.Fprintf(os.Stderr, "LLM found no fields, falling back to pattern engine\n")
			} else {
				fmt.Fprintf(os.Stderr, "LLM extraction failed (%v), falling back to pattern engine\n", err)
			}
		}
	}

	// Known keys were validated at the boundary; the pattern engine cannot
	// fail after that.
	records, _ := c.engine.Extract(in.Text, in.Known)
	return records, "patterns"
}

// RenderResult renders the result to the configured outputs
func (c *Checker) RenderResult(result *model.Result, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := c.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if c.verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}
	if mdPath != "" {
		if err := c.renderer.RenderMarkdown(result, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if c.verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}
	return nil
}
