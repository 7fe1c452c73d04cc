package config

import (
	"time"

	"github.com/spf13/viper"
)

// Token credential persistence config struct
type Token struct {
	Driver string // file, redis or memory
	Path   string
	Key    string
	Redis  *Redis
}

// Redis redis config struct
type Redis struct {
	Addr     string
	Username string
	Password string
	DB       int
	Timeout  time.Duration
}

func getTokenConfig(v *viper.Viper) *Token {
	return &Token{
		Driver: getStringOrDefault(v, "token.driver", "file"),
		Path:   v.GetString("token.path"),
		Key:    v.GetString("token.key"),
		Redis: &Redis{
			Addr:     v.GetString("token.redis.addr"),
			Username: v.GetString("token.redis.username"),
			Password: v.GetString("token.redis.password"),
			DB:       v.GetInt("token.redis.db"),
			Timeout:  getDurationOrDefault(v, "token.redis.timeout", 3*time.Second),
		},
	}
}
