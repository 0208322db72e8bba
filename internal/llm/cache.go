package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ResponseCache stores serialized responses by key. It is satisfied by
// the implementations in internal/cache.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// CachingProvider is a decorator that serves repeated identical requests
// from a ResponseCache.
type CachingProvider struct {
	inner Provider
	cache ResponseCache
	ttl   time.Duration
	group singleflight.Group
}

// WithCache wraps a Provider with response caching. Concurrent identical
// requests share one upstream call.
func WithCache(p Provider, c ResponseCache, ttl time.Duration) Provider {
	return &CachingProvider{inner: p, cache: c, ttl: ttl}
}

type cachedResponse struct {
	Content    json.RawMessage `json:"content"`
	Usage      Usage           `json:"usage"`
	Model      string          `json:"model"`
	StopReason string          `json:"stop_reason"`
}

func (c *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	log := zerolog.Ctx(ctx)
	key := RequestKey(c.inner.ModelID(), req)

	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("llm cache read failed")
	}
	if ok {
		var cr cachedResponse
		if err := json.Unmarshal(data, &cr); err == nil {
			log.Debug().Str("key", key).Str("purpose", PurposeFrom(ctx)).Msg("llm cache hit")
			return &Response{Content: cr.Content, Usage: cr.Usage, Model: cr.Model, StopReason: cr.StopReason}, nil
		}
		log.Warn().Str("key", key).Msg("llm cache entry corrupt, ignoring")
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		resp, err := c.inner.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(cachedResponse{
			Content:    resp.Content,
			Usage:      resp.Usage,
			Model:      resp.Model,
			StopReason: resp.StopReason,
		})
		if err == nil {
			err = c.cache.Set(ctx, key, payload, c.ttl)
		}
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("llm cache write failed")
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers may mutate the response; hand each one its own copy.
	shared := v.(*Response)
	out := *shared
	return &out, nil
}

func (c *CachingProvider) ModelID() string {
	return c.inner.ModelID()
}

// RequestKey derives a stable cache key for req sent to model.
func RequestKey(model string, req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "model=%s\n", model)
	fmt.Fprintf(h, "system=%s\n", req.System)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s=%s\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		fmt.Fprintf(h, "schema=%s\n", req.Schema.Name)
	}
	fmt.Fprintf(h, "max_tokens=%d\ntemperature=%g\n", req.MaxTokens, req.Temperature)
	return "llm:" + hex.EncodeToString(h.Sum(nil))
}
