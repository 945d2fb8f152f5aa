// Package kvredis persists collection snapshots in Redis. Several processes
// pointed at the same server share one store and race exactly like two browser
// tabs on the same origin: last writer wins, no merge.
package kvredis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "neonmart:store:"

type cmdable interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store implements kv.Store on a Redis connection.
type Store struct {
	store cmdable
	raw   *redis.Client
}

// Open bootstraps the Redis-backed store and verifies connectivity.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{store: raw, raw: raw}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		applyPoolSettings(opts, cfg)
		return opts, nil
	}
	if cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	applyPoolSettings(opts, cfg)
	return opts, nil
}

func applyPoolSettings(opts *redis.Options, cfg config.RedisConfig) {
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
}

func key(collection string) string {
	return keyPrefix + collection
}

func (s *Store) Get(ctx context.Context, collection string) ([]byte, bool, error) {
	raw, err := s.store.Get(ctx, key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *Store) Set(ctx context.Context, collection string, value []byte) error {
	return s.store.Set(ctx, key(collection), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, collection string) error {
	return s.store.Del(ctx, key(collection)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.store.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}
