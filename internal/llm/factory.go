package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mentorai/internal/store"
)

// FactoryOption customizes NewProvider.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	cache ResponseCache
	mock  *MockProvider
}

// WithResponseCache enables response caching for cfg.Cache.TTL.
func WithResponseCache(c ResponseCache) FactoryOption {
	return func(o *factoryOptions) { o.cache = c }
}

// WithMock supplies the provider returned for the "mock" preset.
func WithMock(m *MockProvider) FactoryOption {
	return func(o *factoryOptions) { o.mock = m }
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with cache, retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, opts ...FactoryOption) (Provider, error) {
	var o factoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	preset, ok := LookupPreset(cfg.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	var base Provider
	var err error

	switch preset.Backend {
	case BackendOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case BackendAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case BackendGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case BackendMock:
		if o.mock != nil {
			return o.mock, nil
		}
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → cache → timeout → retry → logging → base
	var p Provider = WithLogging(base, eventRepo)
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	if o.cache != nil && cfg.Cache.TTL > 0 {
		p = WithCache(p, o.cache, cfg.Cache.TTL)
	}

	return p, nil
}
