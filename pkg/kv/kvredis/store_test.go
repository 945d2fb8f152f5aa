package kvredis

import (
	"context"
	"testing"
	"time"

	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeCmdable struct {
	data map[string]string
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{data: map[string]string{}}
}

func (f *fakeCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestOptionsFromConfigRequiresEndpoint(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	require.Error(t, err)
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:      "redis://:secret@localhost:6379/2",
		PoolSize: 5,
	})
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", opts.Addr)
	require.Equal(t, 2, opts.DB)
	require.Equal(t, 5, opts.PoolSize)
}

func TestStoreRoundTrip(t *testing.T) {
	store := &Store{store: newFakeCmdable()}
	ctx := context.Background()

	_, found, err := store.Get(ctx, "products")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Set(ctx, "products", []byte(`[{"id":1}]`)))

	raw, found, err := store.Get(ctx, "products")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[{"id":1}]`, string(raw))

	require.NoError(t, store.Delete(ctx, "products"))
	_, found, err = store.Get(ctx, "products")
	require.NoError(t, err)
	require.False(t, found)
}

func TestStoreKeysAreNamespaced(t *testing.T) {
	fake := newFakeCmdable()
	store := &Store{store: fake}
	require.NoError(t, store.Set(context.Background(), "team", []byte(`[]`)))
	_, ok := fake.data["neonmart:store:team"]
	require.True(t, ok)
}
