package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CartStorage is the durable key-value slot a cart serializes into. Read
// returns an empty string, not an error, when the slot has never been
// written.
type CartStorage interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RedisCartStorage keeps one redis key per cart session. Carts have no
// expiry; they live until cleared or the key is removed externally.
type RedisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(client *redis.Client) *RedisCartStorage {
	return &RedisCartStorage{client: client}
}

func (s *RedisCartStorage) Read(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, "cart:"+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisCartStorage) Write(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, "cart:"+key, value, 0).Err()
}

func (s *RedisCartStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, "cart:"+key).Err()
}
