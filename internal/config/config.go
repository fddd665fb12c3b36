// Package config builds the application configuration once at process
// start. Values come from defaults, an optional YAML config file, and
// DECKGEN_-prefixed environment variables, in ascending precedence.
// Conventional credential variables (DEEPSEEK_API_KEY and friends) are
// honored as aliases. The resulting struct is passed by reference into
// the provider factory and the pipeline; there are no ambient lookups
// inside the core.
package config

import (
	"time"

	"github.com/sebrandon1/deckgen/internal/generation"
)

// Config holds all application configuration. Immutable after Load.
type Config struct {
	// Provider selects the LLM backend: deepseek, openai, anthropic,
	// ollama or gemini.
	Provider string `mapstructure:"provider"  validate:"required"`

	// Model overrides the provider's default model identifier.
	Model string `mapstructure:"model"`

	// Theme names the presentation theme; unknown names fall back to
	// the default at resolution time.
	Theme string `mapstructure:"theme"     validate:"required"`

	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	Generation GenerationConfig `mapstructure:"generation"`
	Retry      RetryConfig      `mapstructure:"retry"`

	DeepSeek  EndpointConfig `mapstructure:"deepseek"`
	OpenAI    EndpointConfig `mapstructure:"openai"`
	Anthropic EndpointConfig `mapstructure:"anthropic"`
	Gemini    EndpointConfig `mapstructure:"gemini"`
	Ollama    OllamaConfig   `mapstructure:"ollama"`
}

// GenerationConfig bounds the request sent to a backend.
type GenerationConfig struct {
	MaxTokens     int     `mapstructure:"max_tokens"      validate:"gt=0"`
	Temperature   float64 `mapstructure:"temperature"     validate:"gte=0,lte=2"`
	MaxInputChars int     `mapstructure:"max_input_chars" validate:"gt=0"`
}

// RetryConfig configures the resilient invoker.
type RetryConfig struct {
	MaxAttempts      int `mapstructure:"max_attempts"       validate:"gte=1"`
	BaseDelaySeconds int `mapstructure:"base_delay_seconds" validate:"gte=0"`
}

// Policy converts the configured values into the invoker's policy type.
func (r RetryConfig) Policy() generation.RetryPolicy {
	return generation.RetryPolicy{
		MaxAttempts: r.MaxAttempts,
		BaseDelay:   time.Duration(r.BaseDelaySeconds) * time.Second,
	}
}

// EndpointConfig holds credentials for one hosted backend.
type EndpointConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// OllamaConfig holds settings for the local-inference backend. The call
// timeout is explicit because local generation has no natural upper bound.
type OllamaConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

// Timeout returns the bound applied to every Ollama call.
func (o OllamaConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}
