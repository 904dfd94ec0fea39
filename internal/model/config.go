package model

// Config is the full runtime configuration, loadable from
// ~/.labelcheck/config.yaml and LABELCHECK_* environment variables
type Config struct {
	Scoring     ScoringConfig     `yaml:"scoring" json:"scoring"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// ScoringConfig selects and parameterizes the scoring policy
type ScoringConfig struct {
	// Policy: "equal" (each of the six fields worth 100/6 points) or
	// "weighted" (per-field penalties with category-conditional checks).
	// The two policies are kept distinct on purpose; callers depend on
	// either behavior.
	Policy string `yaml:"policy" json:"policy"`

	// Category enables category-conditional checks under the weighted
	// policy (e.g. ingredients list for food/beverages/snacks).
	Category string `yaml:"category" json:"category"`
}

// LLMConfig configures the optional model-backed extraction path
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string `yaml:"provider" json:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model"`

	// APIKey for OpenAI/Anthropic
	APIKey string `yaml:"api_key" json:"-"`

	// BaseURL for custom endpoints (e.g. Ollama)
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Timeout for API requests, seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// RatePerSecond throttles provider calls during batch runs
	RatePerSecond float64 `yaml:"rate_per_second" json:"rate_per_second"`
}

// CacheConfig controls caching of LLM extraction responses. The pattern
// engine itself never caches; every deterministic call is independent.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	TTLMinutes int  `yaml:"ttl_minutes" json:"ttl_minutes"`
}

// ConcurrencyConfig controls batch processing parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// Scoring policy names
const (
	PolicyEqualWeight = "equal"
	PolicyWeighted    = "weighted"
)

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Policy: PolicyEqualWeight,
		},
		LLM: LLMConfig{
			Provider:      "", // Disabled by default; pattern engine always available
			Timeout:       30,
			MaxTokens:     1000,
			RatePerSecond: 2,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 60,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 8,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
