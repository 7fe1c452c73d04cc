package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. COURSENAV_API_BASE_URL.
const EnvPrefix = "COURSENAV"

var (
	config *Config
	path   string
	mu     sync.Mutex
	v      = viper.New()
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	API      *API
	Token    *Token
	Routes   *Routes
	Logger   *Logger
	Observes *Observes
	Mock     *Mock
	Viper    *viper.Viper
}

// IsDevelopment reports whether the run mode is development
func (c *Config) IsDevelopment() bool {
	return c != nil && c.RunMode == "development"
}

// GetConfig returns the last loaded configuration, loading defaults when
// nothing has been loaded yet.
func GetConfig() (*Config, error) {
	mu.Lock()
	cfg := config
	mu.Unlock()
	if cfg != nil {
		return cfg, nil
	}
	return LoadConfig("")
}

// LoadConfig loads the configuration from the file.
// An empty path searches the default locations; a missing file there is not an
// error and defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	nv := viper.New()
	setDefaults(nv)
	nv.SetEnvPrefix(EnvPrefix)
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			nv.AddConfigPath(filepath.Join(home, ".coursenav"))
		}
		nv.AddConfigPath("/etc/coursenav")
		if ex, err := os.Executable(); err == nil {
			nv.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := build(nv)
	v = nv
	path = configPath
	config = cfg
	return cfg, nil
}

// build maps a viper instance to the typed configuration
func build(v *viper.Viper) *Config {
	return &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		API:      getAPIConfig(v),
		Token:    getTokenConfig(v),
		Routes:   getRoutesConfig(v),
		Logger:   getLoggerConfig(v),
		Observes: getObservesConfig(v),
		Mock:     getMockConfig(v),
		Viper:    v,
	}
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	p := path
	mu.Unlock()

	if _, err := LoadConfig(p); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	mu.Lock()
	wv := v
	mu.Unlock()

	if wv.ConfigFileUsed() == "" {
		return
	}
	wv.OnConfigChange(func(e fsnotify.Event) {
		if err := Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		cfg, _ := GetConfig()
		callback(cfg)
	})
	wv.WatchConfig()
}

// setDefaults registers default values for every key
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "coursenav")
	v.SetDefault("run_mode", "production")

	v.SetDefault("api.base_url", "http://localhost:8000/api")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("api.auth_scheme", "Token")
	v.SetDefault("api.user_agent", "coursenav")
	v.SetDefault("api.breaker.enabled", false)
	v.SetDefault("api.breaker.max_requests", 1)
	v.SetDefault("api.breaker.interval", "30s")
	v.SetDefault("api.breaker.timeout", "10s")
	v.SetDefault("api.breaker.min_requests", 3)
	v.SetDefault("api.breaker.failure_ratio", 0.6)

	v.SetDefault("token.driver", "file")
	v.SetDefault("token.path", defaultTokenPath())
	v.SetDefault("token.key", "coursenav")
	v.SetDefault("token.redis.addr", "127.0.0.1:6379")
	v.SetDefault("token.redis.db", 0)
	v.SetDefault("token.redis.timeout", "3s")

	v.SetDefault("routes.landing", "home")
	v.SetDefault("routes.login", "login")
	v.SetDefault("routes.max_redirects", 8)

	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")

	v.SetDefault("mock.addr", "127.0.0.1:8000")
	v.SetDefault("mock.prefix", "/api")
	v.SetDefault("mock.secret", "coursenav-dev-secret")
	v.SetDefault("mock.token_expire", "24h")
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "coursenav", "token.json")
}
