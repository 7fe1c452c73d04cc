package tokenstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/ncobase/coursenav/config"
)

// Store persists the session credential across process restarts
type Store interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// record is the persisted form of a token
type record struct {
	Token string `json:"token"`
}

// New creates the store selected by cfg.Driver
func New(cfg *config.Token) (Store, error) {
	if cfg == nil {
		return NewMemoryStore(), nil
	}
	switch strings.ToLower(cfg.Driver) {
	case "", "file":
		return NewFileStore(cfg.Path)
	case "redis":
		return NewRedisStore(cfg.Redis, cfg.Key)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported token driver: %s", cfg.Driver)
	}
}
