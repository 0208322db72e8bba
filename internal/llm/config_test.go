package llm

import (
	"context"
	"testing"
	"time"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AI_PROVIDER", "MENTORAI_MODEL", "MENTORAI_BASE_URL",
		"DEEPSEEK_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_DefaultsToDeepSeek(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "sk-ds")

	cfg := ConfigFromEnv()
	if cfg.Provider != "deepseek" {
		t.Fatalf("expected deepseek, got %q", cfg.Provider)
	}
	if cfg.OpenAI.BaseURL != "https://api.deepseek.com" {
		t.Fatalf("unexpected base URL %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "deepseek-chat" {
		t.Fatalf("unexpected model %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.APIKey != "sk-ds" {
		t.Fatalf("expected key from DEEPSEEK_API_KEY, got %q", cfg.OpenAI.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestConfigFromEnv_SelectsPreset(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AI_PROVIDER", "Groq")
	t.Setenv("GROQ_API_KEY", "gsk")
	t.Setenv("MENTORAI_MODEL", "llama-3.3-70b-versatile")

	cfg := ConfigFromEnv()
	if cfg.Provider != "groq" {
		t.Fatalf("expected groq, got %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("model override not applied: %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.JSONMode != JSONModeObject {
		t.Fatalf("expected object JSON mode, got %q", cfg.OpenAI.JSONMode)
	}
}

func TestConfigFromEnv_Anthropic(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := ConfigFromEnv()
	if cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatalf("expected anthropic key, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("unexpected model %q", cfg.Anthropic.Model)
	}
}

func TestConfigFromEnv_UnknownProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AI_PROVIDER", "skynet")

	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown provider")
	}
}

func TestConfig_ValidateNamesKeyVariable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.usePreset(presets["together"])
	err := cfg.Validate()
	if err == nil || err.Error() != "TOGETHER_API_KEY is required for the together provider" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProviders(t *testing.T) {
	list := Providers()
	if len(list) != len(presets) {
		t.Fatalf("expected %d presets, got %d", len(presets), len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Fatalf("providers not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
	ollama, ok := LookupPreset("ollama")
	if !ok || ollama.KeyEnv() != "" {
		t.Fatalf("ollama should take no key: %+v", ollama)
	}
	xai, _ := LookupPreset("xai")
	if xai.KeyEnv() != "XAI_API_KEY" {
		t.Fatalf("unexpected key env %q", xai.KeyEnv())
	}
}

func TestNewProvider_MockPreset(t *testing.T) {
	mock := NewMockProvider()
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, WithMock(mock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Provider(mock) {
		t.Fatal("expected the supplied mock to be returned")
	}
}

func TestNewProvider_Chain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Timeout = time.Second

	p, err := NewProvider(context.Background(), cfg, nil, WithResponseCache(newMapCache()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*CachingProvider); !ok {
		t.Fatalf("expected cache as outermost layer, got %T", p)
	}
	if p.ModelID() != "deepseek-chat" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}
}
