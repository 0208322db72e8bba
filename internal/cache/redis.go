package cache

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by this application.
const DefaultPrefix = "mentorai:"

// Redis is a Cache backed by plain Redis string keys.
type Redis struct {
	client *redis.Client
	prefix string

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRedis wraps client. Keys are stored under prefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		rnd:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	r.mu.Lock()
	ttl = TTLWithJitter(ttl, r.rnd)
	r.mu.Unlock()
	return r.client.Set(ctx, r.prefix+key, val, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
