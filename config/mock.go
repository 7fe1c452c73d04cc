package config

import (
	"time"

	"github.com/spf13/viper"
)

// Mock development backend config struct
type Mock struct {
	Addr        string
	Prefix      string
	Secret      string
	TokenExpire time.Duration
}

func getMockConfig(v *viper.Viper) *Mock {
	return &Mock{
		Addr:        v.GetString("mock.addr"),
		Prefix:      v.GetString("mock.prefix"),
		Secret:      v.GetString("mock.secret"),
		TokenExpire: getDurationOrDefault(v, "mock.token_expire", 24*time.Hour),
	}
}
