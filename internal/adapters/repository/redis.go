package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/campus/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps values as plain redis strings.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects and pings the server.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Network:  "tcp",
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	metrics.RecordStoreOperation(string(DriverRedis), "get")
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		metrics.RecordStoreError(string(DriverRedis), "get")
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return v, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	metrics.RecordStoreOperation(string(DriverRedis), "set")
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		metrics.RecordStoreError(string(DriverRedis), "set")
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	metrics.RecordStoreOperation(string(DriverRedis), "remove")
	if err := r.client.Del(ctx, key).Err(); err != nil {
		metrics.RecordStoreError(string(DriverRedis), "remove")
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}
