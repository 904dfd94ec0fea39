package llm

import (
	"context"

	"github.com/bharatvision/labelcheck/internal/model"
)

// Provider defines the interface for LLM-backed field extraction. It is a
// parallel alternative producer of the same field records the pattern engine
// emits, selected by availability, never blended with it.
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractFields asks the model to pull the requested declarations out
	// of raw label text
	ExtractFields(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// IsAvailable checks if the provider is properly configured and
	// accessible
	IsAvailable(ctx context.Context) bool
}

// ExtractRequest contains the input for LLM field extraction
type ExtractRequest struct {
	// Text is the raw (possibly OCR-derived) label text
	Text string

	// Fields lists the declarations to extract
	Fields []model.FieldKind

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractResponse contains the model's field answers
type ExtractResponse struct {
	// Values maps fields to extracted values; a field absent from the map
	// means the model found nothing for it
	Values map[model.FieldKind]string `json:"values"`

	// Model is the model that generated the response
	Model string `json:"model"`

	// TokensUsed tracks token consumption
	TokensUsed int `json:"tokens_used"`
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}
