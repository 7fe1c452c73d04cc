// Package config loads the coursenav configuration with Viper, with defaults for
// every key, COURSENAV_* environment overrides and hot-reloading via fsnotify.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// An empty path searches ./config.*, ~/.coursenav, /etc/coursenav and the
// executable directory; when nothing is found the defaults apply.
//
// # Configuration Format
//
//	app_name: coursenav
//	run_mode: development
//
//	api:
//	  base_url: http://localhost:8000/api
//	  timeout: 15s
//	  auth_scheme: Token
//	  breaker:
//	    enabled: true
//	    failure_ratio: 0.6
//
//	token:
//	  driver: redis        # file, redis or memory
//	  key: coursenav
//	  redis:
//	    addr: 127.0.0.1:6379
//
//	routes:
//	  landing: home
//	  login: login
//
//	logger:
//	  level: 5             # logrus level, 5 = debug
//	  format: json
//	  output: file
//	  output_file: ./logs/coursenav.log
//
//	observes:
//	  sentry:
//	    endpoint: https://key@sentry.example.com/1
//	  tracer:
//	    endpoint: localhost:4317
//
// # Hot Reload
//
//	config.Watch(func(cfg *config.Config) {
//	    logger.SetLevel(cfg.Logger.Level)
//	})
package config
