package llm

import (
	"fmt"
	"os"
	"time"
)

// DefaultProvider is used when AI_PROVIDER is unset.
const DefaultProvider = "deepseek"

// DefaultTemperature matches the sampling used by every generator.
const DefaultTemperature = 0.7

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects a preset by name. See Providers().
	Provider string

	// OpenAI configures every OpenAI-compatible preset.
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
	Cache     CacheConfig

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 60s.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig configures an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	Name     string // provider label recorded in events
	APIKey   string
	Model    string
	BaseURL  string // empty means api.openai.com
	JSONMode JSONMode
	// KeyOptional allows an empty APIKey (local servers).
	KeyOptional bool
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// CacheConfig controls response caching. A zero TTL disables it.
type CacheConfig struct {
	TTL time.Duration
}

// DefaultConfig returns a Config for the default provider with no keys.
func DefaultConfig() Config {
	cfg := Config{
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Cache:   CacheConfig{TTL: 24 * time.Hour},
		Timeout: 60 * time.Second,
	}
	cfg.usePreset(presets[DefaultProvider])
	return cfg
}

// usePreset points the config at p, keeping any already-set keys.
func (c *Config) usePreset(p Preset) {
	c.Provider = p.Name
	if p.Backend != BackendOpenAI {
		return
	}
	c.OpenAI = OpenAIConfig{
		Name:        p.Name,
		Model:       p.Model,
		BaseURL:     p.BaseURL,
		JSONMode:    p.JSONMode,
		KeyOptional: !p.KeyRequired,
	}
}

// ConfigFromEnv builds a Config from AI_PROVIDER, the <PROVIDER>_API_KEY
// variables and the MENTORAI_MODEL / MENTORAI_BASE_URL overrides.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if name := os.Getenv("AI_PROVIDER"); name != "" {
		if p, ok := LookupPreset(name); ok {
			cfg.usePreset(p)
		} else {
			// Unknown names are kept so Validate can report them.
			cfg.Provider = name
		}
	}

	p, ok := LookupPreset(cfg.Provider)
	if !ok {
		return cfg
	}

	key := ""
	if env := p.KeyEnv(); env != "" {
		key = os.Getenv(env)
	}
	model := os.Getenv("MENTORAI_MODEL")

	switch p.Backend {
	case BackendOpenAI:
		cfg.OpenAI.APIKey = key
		if model != "" {
			cfg.OpenAI.Model = model
		}
		if u := os.Getenv("MENTORAI_BASE_URL"); u != "" {
			cfg.OpenAI.BaseURL = u
		}
	case BackendAnthropic:
		cfg.Anthropic.APIKey = key
		if model != "" {
			cfg.Anthropic.Model = model
		}
	case BackendGemini:
		cfg.Gemini.APIKey = key
		if model != "" {
			cfg.Gemini.Model = model
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	p, ok := LookupPreset(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}

	var key string
	switch p.Backend {
	case BackendOpenAI:
		key = c.OpenAI.APIKey
	case BackendAnthropic:
		key = c.Anthropic.APIKey
	case BackendGemini:
		key = c.Gemini.APIKey
	}
	if p.KeyRequired && key == "" {
		return fmt.Errorf("%s is required for the %s provider", p.KeyEnv(), p.Name)
	}
	return nil
}
