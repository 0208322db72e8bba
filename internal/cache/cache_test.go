package cache

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func runRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := newClient(mr)
	t.Cleanup(func() { client.Close() })
	return mr, NewRedis(client, DefaultPrefix)
}

func TestRedis_GetSetDelete(t *testing.T) {
	mr, c := runRedis(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("mentorai:k") {
		t.Fatal("expected prefixed key in redis")
	}
	ttl := mr.TTL("mentorai:k")
	if ttl < time.Minute || ttl > time.Minute+6*time.Second {
		t.Fatalf("TTL %v outside [1m, 1m6s]", ttl)
	}

	val, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(val) != "v" {
		t.Fatalf("Get = %q, %v, %v", val, ok, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestRedis_Expiry(t *testing.T) {
	mr, c := runRedis(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestRedis_Unavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	c := NewRedis(client, DefaultPrefix)
	mr.Close()

	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error when redis is down")
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error when redis is down")
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	m.Set(ctx, "short", []byte("a"), time.Minute)
	m.Set(ctx, "forever", []byte("b"), 0)

	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "short"); ok {
		t.Fatal("expected entry to expire at its deadline")
	}
	if v, ok, _ := m.Get(ctx, "forever"); !ok || string(v) != "b" {
		t.Fatal("entry without ttl should not expire")
	}
	if m.Len() != 1 {
		t.Fatalf("expired entry should be dropped, Len = %d", m.Len())
	}
}

func TestMemory_CopiesValue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	buf := []byte("abc")
	m.Set(ctx, "k", buf, 0)
	buf[0] = 'x'

	v, _, _ := m.Get(ctx, "k")
	if string(v) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %q", v)
	}
}

func TestTTLWithJitter(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		got := TTLWithJitter(10*time.Second, rnd)
		if got < 10*time.Second || got > 11*time.Second {
			t.Fatalf("TTLWithJitter = %v outside [10s, 11s]", got)
		}
	}
	if TTLWithJitter(0, rnd) != 0 {
		t.Fatal("zero ttl must stay zero")
	}
	if TTLWithJitter(5, rnd) != 5 {
		t.Fatal("tiny ttl has no room for jitter")
	}
}
