package store

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// KV is the durable blob area backing the local store. Keys are collection
// names; values are the full JSON serialization of a collection. Get
// returns (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// RedisKV stores blobs in Redis under a common prefix. Entries never
// expire; the local store owns their lifecycle.
type RedisKV struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisKV wraps an established Redis client. The prefix namespaces the
// collection keys so several applications can share one Redis database.
func NewRedisKV(rdb *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = "libseat"
	}
	return &RedisKV{rdb: rdb, prefix: prefix}
}

func (k *RedisKV) key(name string) string { return k.prefix + ":" + name }

func (k *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := k.rdb.Get(ctx, k.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

func (k *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return k.rdb.Set(ctx, k.key(key), value, 0).Err()
}

func (k *RedisKV) Delete(ctx context.Context, key string) error {
	return k.rdb.Del(ctx, k.key(key)).Err()
}

// MemoryKV is a process-local KV used in tests and as a degraded stand-in
// when Redis is unreachable at startup.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (k *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	b, ok := k.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

func (k *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	k.data[key] = cp
	return nil
}

func (k *MemoryKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.data, key)
	return nil
}
