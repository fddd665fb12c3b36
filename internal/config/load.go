package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "DECKGEN"

// Load reads configuration from defaults, an optional YAML file and
// environment variables, then validates the result. An empty path skips
// the file layer.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("provider", "deepseek")
	v.SetDefault("model", "")
	v.SetDefault("theme", "professional")
	v.SetDefault("log_level", "info")

	v.SetDefault("generation.max_tokens", 4096)
	v.SetDefault("generation.temperature", 0.7)
	v.SetDefault("generation.max_input_chars", 50000)

	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_delay_seconds", 2)

	v.SetDefault("deepseek.base_url", "https://api.deepseek.com")
	v.SetDefault("openai.base_url", "https://api.openai.com")
	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.timeout_seconds", 300)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credential keys have no defaults, so they are bound explicitly.
	// The second alias is the conventional variable for each vendor.
	bindings := map[string][]string{
		"deepseek.api_key":  {"DECKGEN_DEEPSEEK_API_KEY", "DEEPSEEK_API_KEY"},
		"openai.api_key":    {"DECKGEN_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"anthropic.api_key": {"DECKGEN_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
		"gemini.api_key":    {"DECKGEN_GEMINI_API_KEY", "GEMINI_API_KEY"},
	}
	for key, vars := range bindings {
		if err := v.BindEnv(append([]string{key}, vars...)...); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return &cfg, nil
}
