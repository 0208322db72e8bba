// Package cache provides byte caches shared by the LLM response cache and
// the quiz read path.
package cache

import (
	"context"
	"math/rand/v2"
	"time"
)

// Cache stores opaque values with a time to live.
type Cache interface {
	// Get returns the value and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores val; a non-positive ttl keeps it until evicted.
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TTLWithJitter adds up to 10% random jitter to ttl so entries written
// together don't expire together.
func TTLWithJitter(ttl time.Duration, rnd *rand.Rand) time.Duration {
	if ttl <= 0 {
		return 0
	}
	jitterMax := int64(ttl) / 10
	if jitterMax == 0 {
		return ttl
	}
	return ttl + time.Duration(rnd.Int64N(jitterMax+1))
}
