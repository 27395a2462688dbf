package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore persists entries as JSON strings, one redis key per
// logical entry, no expiry.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, log *zap.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) bool {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Error("error reading from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error("error writing to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		s.log.Error("error writing to storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *RedisStore) Remove(ctx context.Context, key string) bool {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.log.Error("error removing from storage", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
