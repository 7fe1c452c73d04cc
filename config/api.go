package config

import (
	"time"

	"github.com/spf13/viper"
)

// API api client config struct
type API struct {
	BaseURL    string
	Timeout    time.Duration
	AuthScheme string
	UserAgent  string
	Breaker    *Breaker
}

// Breaker circuit breaker config struct
type Breaker struct {
	Enabled      bool
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

func getAPIConfig(v *viper.Viper) *API {
	return &API{
		BaseURL:    v.GetString("api.base_url"),
		Timeout:    getDurationOrDefault(v, "api.timeout", 15*time.Second),
		AuthScheme: getStringOrDefault(v, "api.auth_scheme", "Token"),
		UserAgent:  v.GetString("api.user_agent"),
		Breaker: &Breaker{
			Enabled:      v.GetBool("api.breaker.enabled"),
			MaxRequests:  getUint32OrDefault(v, "api.breaker.max_requests", 1),
			Interval:     getDurationOrDefault(v, "api.breaker.interval", 30*time.Second),
			Timeout:      getDurationOrDefault(v, "api.breaker.timeout", 10*time.Second),
			MinRequests:  getUint32OrDefault(v, "api.breaker.min_requests", 3),
			FailureRatio: getFloat64OrDefault(v, "api.breaker.failure_ratio", 0.6),
		},
	}
}
