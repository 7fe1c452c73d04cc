package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ncobase/coursenav/config"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the token under "<prefix>:token"
type RedisStore struct {
	rc  *redis.Client
	key string
}

// Key builds the token key for a prefix
func Key(prefix string) string {
	if prefix == "" {
		prefix = "coursenav"
	}
	return fmt.Sprintf("%s:token", prefix)
}

// NewRedisStore creates a redis backed store
func NewRedisStore(cfg *config.Redis, prefix string) (*RedisStore, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	rc := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})
	return NewRedisStoreWithClient(rc, prefix), nil
}

// NewRedisStoreWithClient creates a store over an existing client
func NewRedisStoreWithClient(rc *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rc: rc, key: Key(prefix)}
}

// Get retrieves the token; redis.Nil means no token
func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	result, err := s.rc.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token: %w", err)
	}

	var r record
	if err := json.Unmarshal([]byte(result), &r); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal token data: %w", err)
	}
	if r.Token == "" {
		return "", false, nil
	}
	return r.Token, true, nil
}

// Set saves the token without expiry
func (s *RedisStore) Set(ctx context.Context, token string) error {
	bytes, err := json.Marshal(record{Token: token})
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := s.rc.Set(ctx, s.key, bytes, 0).Err(); err != nil {
		return fmt.Errorf("failed to set token: %w", err)
	}
	return nil
}

// Remove deletes the token key
func (s *RedisStore) Remove(ctx context.Context) error {
	if err := s.rc.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Close releases the client
func (s *RedisStore) Close() error {
	return s.rc.Close()
}
