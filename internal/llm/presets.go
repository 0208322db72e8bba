package llm

import (
	"sort"
	"strings"
)

// JSONMode controls how an OpenAI-compatible endpoint is asked for JSON.
type JSONMode string

const (
	// JSONModeStrict sends a json_schema response format.
	JSONModeStrict JSONMode = "strict"
	// JSONModeObject sends json_object; the schema only travels in the prompt.
	JSONModeObject JSONMode = "object"
	// JSONModeNone sends no response format at all.
	JSONModeNone JSONMode = "none"
)

// Backend identifies which SDK serves a preset.
type Backend string

const (
	BackendOpenAI    Backend = "openai"
	BackendAnthropic Backend = "anthropic"
	BackendGemini    Backend = "gemini"
	BackendMock      Backend = "mock"
)

// Preset describes a selectable AI provider.
type Preset struct {
	Name        string
	Backend     Backend
	BaseURL     string
	Model       string
	JSONMode    JSONMode
	KeyRequired bool
	Description string
}

// KeyEnv returns the environment variable holding this provider's API key,
// e.g. DEEPSEEK_API_KEY. Empty when the provider takes no key.
func (p Preset) KeyEnv() string {
	if !p.KeyRequired {
		return ""
	}
	return strings.ToUpper(p.Name) + "_API_KEY"
}

var presets = map[string]Preset{
	"deepseek": {
		Name:        "deepseek",
		Backend:     BackendOpenAI,
		BaseURL:     "https://api.deepseek.com",
		Model:       "deepseek-chat",
		JSONMode:    JSONModeObject,
		KeyRequired: true,
		Description: "DeepSeek chat, low cost",
	},
	"groq": {
		Name:        "groq",
		Backend:     BackendOpenAI,
		BaseURL:     "https://api.groq.com/openai/v1",
		Model:       "openai/gpt-oss-120b",
		JSONMode:    JSONModeObject,
		KeyRequired: true,
		Description: "Groq, very fast inference",
	},
	"together": {
		Name:        "together",
		Backend:     BackendOpenAI,
		BaseURL:     "https://api.together.xyz/v1",
		Model:       "meta-llama/Meta-Llama-3.1-70B-Instruct-Turbo",
		JSONMode:    JSONModeNone,
		KeyRequired: true,
		Description: "Together AI, open models",
	},
	"openai": {
		Name:        "openai",
		Backend:     BackendOpenAI,
		Model:       "gpt-4o-mini",
		JSONMode:    JSONModeStrict,
		KeyRequired: true,
		Description: "OpenAI",
	},
	"xai": {
		Name:        "xai",
		Backend:     BackendOpenAI,
		BaseURL:     "https://api.x.ai/v1",
		Model:       "grok-beta",
		JSONMode:    JSONModeNone,
		KeyRequired: true,
		Description: "xAI Grok",
	},
	"ollama": {
		Name:        "ollama",
		Backend:     BackendOpenAI,
		BaseURL:     "http://localhost:11434/v1",
		Model:       "llama3.1",
		JSONMode:    JSONModeObject,
		Description: "Local models through Ollama",
	},
	"anthropic": {
		Name:        "anthropic",
		Backend:     BackendAnthropic,
		Model:       "claude-haiku",
		KeyRequired: true,
		Description: "Anthropic Claude",
	},
	"gemini": {
		Name:        "gemini",
		Backend:     BackendGemini,
		Model:       "gemini-flash",
		KeyRequired: true,
		Description: "Google Gemini",
	},
	"mock": {
		Name:        "mock",
		Backend:     BackendMock,
		Model:       "mock",
		Description: "Canned responses, for tests and demos",
	},
}

// LookupPreset returns the preset registered under name (case-insensitive).
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Providers lists every preset sorted by name.
func Providers() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
