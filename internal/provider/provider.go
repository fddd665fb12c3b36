// Package provider implements the LLM backend variants behind the
// generation.Provider contract. Variants are selected by a string
// identifier through New; adding a backend means adding one variant
// and one factory case.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/generation"
)

// Defaults applied when no model is configured.
const (
	defaultDeepSeekModel  = "deepseek-chat"
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-3-5-sonnet-20241022"
	defaultOllamaModel    = "llama3.1"
	defaultGeminiModel    = "gemini-2.0-flash"
)

// New builds the provider named by cfg.Provider. Credential checks
// happen here, at construction time, never at call time.
func New(ctx context.Context, cfg *config.Config) (generation.Provider, error) {
	model := cfg.Model

	switch strings.ToLower(cfg.Provider) {
	case "deepseek":
		return newChatProvider("DeepSeek", "DEEPSEEK_API_KEY", cfg.DeepSeek,
			cfg.Generation, orDefault(model, defaultDeepSeekModel))
	case "openai":
		return newChatProvider("OpenAI", "OPENAI_API_KEY", cfg.OpenAI,
			cfg.Generation, orDefault(model, defaultOpenAIModel))
	case "anthropic":
		return newAnthropicProvider(cfg.Anthropic, cfg.Generation,
			orDefault(model, defaultAnthropicModel))
	case "ollama":
		return newOllamaProvider(cfg.Ollama, cfg.Generation,
			orDefault(model, defaultOllamaModel))
	case "gemini":
		return newGeminiProvider(ctx, cfg.Gemini, cfg.Generation,
			orDefault(model, defaultGeminiModel))
	default:
		names := make([]string, 0, len(Available()))
		for _, p := range Available() {
			names = append(names, p.Name)
		}
		return nil, fmt.Errorf("%w: unknown provider %q (available: %s)",
			generation.ErrConfiguration, cfg.Provider, strings.Join(names, ", "))
	}
}

// Info describes one selectable backend for display purposes.
type Info struct {
	Name        string
	Description string
}

// Available returns the selectable backends in a stable order.
func Available() []Info {
	return []Info{
		{"deepseek", "DeepSeek AI (default, cost-effective)"},
		{"openai", "OpenAI GPT (requires OPENAI_API_KEY)"},
		{"anthropic", "Anthropic Claude (requires ANTHROPIC_API_KEY)"},
		{"gemini", "Google Gemini (requires GEMINI_API_KEY)"},
		{"ollama", "Ollama local models (requires Ollama running locally)"},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
