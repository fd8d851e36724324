package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"resident-records-service/internal/infrastructure/config"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisService{Client: client}
}

// NewRedisServiceWithClient wraps an existing client
func NewRedisServiceWithClient(client *redis.Client) InterfaceRedisService {
	return &RedisService{Client: client}
}

// 1 SetBytes stores raw bytes with expiration
func (s *RedisService) SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return s.Client.Set(ctx, key, value, expiration).Err()
}

// 2 GetBytes returns the raw bytes at key, found=false on a miss
func (s *RedisService) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// 3 DeleteByPrefix removes every key starting with prefix
func (s *RedisService) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	var deleted int
	iter := s.Client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := s.Client.Del(ctx, batch...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	if len(batch) == 0 {
		return deleted, nil
	}
	if err := s.Client.Del(ctx, batch...).Err(); err != nil {
		return deleted, err
	}
	return deleted + len(batch), nil
}

// 4 Ping checks the connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// 5 Close releases the client
func (s *RedisService) Close() error {
	return s.Client.Close()
}
