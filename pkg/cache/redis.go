package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 200

type RedisEngine struct {
	client *redis.Client
	// namespace is prepended to every key so several apps can share a server.
	namespace string
}

func NewRedisEngine(client *redis.Client, namespace string) *RedisEngine {
	return &RedisEngine{client: client, namespace: namespace}
}

// NewRedisEngineFromURL parses a redis:// URL and pings the server.
func NewRedisEngineFromURL(ctx context.Context, url, namespace string) (*RedisEngine, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return NewRedisEngine(client, namespace), nil
}

func (r *RedisEngine) key(k string) string {
	return r.namespace + k
}

func (r *RedisEngine) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *RedisEngine) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), b, ttl).Err()
}

func (r *RedisEngine) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// InvalidatePrefix walks the keyspace with SCAN rather than KEYS so large
// keyspaces do not block the server.
func (r *RedisEngine) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, r.key(prefix)+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return r.client.Del(ctx, batch...).Err()
	}
	return nil
}

func (r *RedisEngine) Close() {
	_ = r.client.Close()
}
