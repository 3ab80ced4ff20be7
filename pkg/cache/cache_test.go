package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func engines(t *testing.T) map[string]Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Engine{
		"local": NewLocalEngine(time.Minute),
		"redis": NewRedisEngine(client, "test:"),
	}
}

func TestEngines(t *testing.T) {
	for name, e := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var got payload
			found, err := GetJSON(ctx, e, "missing", &got)
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, e.Set(ctx, "public:products:a", payload{Name: "a", Count: 1}, time.Minute))
			require.NoError(t, e.Set(ctx, "public:products:b", payload{Name: "b"}, time.Minute))
			require.NoError(t, e.Set(ctx, "public:news:a", payload{Name: "n"}, time.Minute))

			found, err = GetJSON(ctx, e, "public:products:a", &got)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, payload{Name: "a", Count: 1}, got)

			require.NoError(t, e.InvalidatePrefix(ctx, "public:products:"))

			_, found, _ = e.Get(ctx, "public:products:a")
			assert.False(t, found)
			_, found, _ = e.Get(ctx, "public:products:b")
			assert.False(t, found)
			_, found, _ = e.Get(ctx, "public:news:a")
			assert.True(t, found, "other prefixes survive")

			require.NoError(t, e.Delete(ctx, "public:news:a"))
			_, found, _ = e.Get(ctx, "public:news:a")
			assert.False(t, found)
		})
	}
}

func TestRedisEngineExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	e := NewRedisEngine(client, "")
	ctx := context.Background()
	require.NoError(t, e.Set(ctx, "k", 1, time.Second))

	mr.FastForward(2 * time.Second)

	_, found, err := e.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}
