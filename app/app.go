package app

import (
	"context"
	"fmt"

	"github.com/ncobase/coursenav/config"
	"github.com/ncobase/coursenav/courses"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/net/api"
	"github.com/ncobase/coursenav/observes"
	"github.com/ncobase/coursenav/router"
	"github.com/ncobase/coursenav/service"
	"github.com/ncobase/coursenav/session"
	"github.com/ncobase/coursenav/tokenstore"
	"github.com/ncobase/coursenav/version"
)

// App is the composition root: one session, router and course store per process
type App struct {
	Config  *config.Config
	API     *api.Client
	Tokens  tokenstore.Store
	Service *service.Service
	Session *session.Manager
	Router  *router.Router
	Courses *courses.Store
}

// Option configures the app
type Option func(*options)

type options struct {
	apiOpts []api.Option
	store   tokenstore.Store
	ambient bool
}

// WithAPIOptions passes options to the API client
func WithAPIOptions(opts ...api.Option) Option {
	return func(o *options) { o.apiOpts = append(o.apiOpts, opts...) }
}

// WithTokenStore overrides the configured token store
func WithTokenStore(s tokenstore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithoutAmbient skips logger, sentry and tracer setup
func WithoutAmbient() Option {
	return func(o *options) { o.ambient = false }
}

// New wires the application. The returned cleanup releases everything New set up.
func New(cfg *config.Config, opts ...Option) (*App, func(), error) {
	o := &options{ambient: true}
	for _, opt := range opts {
		opt(o)
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	if o.ambient {
		c, err := setupAmbient(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanups = append(cleanups, c)
	}

	client := api.New(cfg.API, o.apiOpts...)

	store := o.store
	if store == nil {
		s, err := tokenstore.New(cfg.Token)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("token store: %w", err)
		}
		store = s
		if closer, ok := s.(interface{ Close() error }); ok {
			cleanups = append(cleanups, func() { _ = closer.Close() })
		}
	}

	svc := service.New(client)

	var routes config.Routes
	if cfg.Routes != nil {
		routes = *cfg.Routes
	}
	sess := session.New(store, client, svc, session.WithLoginRoute(routes.Login))
	r, err := router.New(sess,
		router.WithTargets(routes.Landing, routes.Login),
		router.WithMaxRedirects(routes.MaxRedirects),
	)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("router: %w", err)
	}
	sess.BindNavigator(r)

	return &App{
		Config:  cfg,
		API:     client,
		Tokens:  store,
		Service: svc,
		Session: sess,
		Router:  r,
		Courses: courses.New(svc.Courses),
	}, cleanup, nil
}

// setupAmbient initializes logging, error reporting and tracing
func setupAmbient(cfg *config.Config) (func(), error) {
	info := version.GetVersionInfo()
	logger.SetVersion(info.Version)

	cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	flush, err := observes.NewSentry(observes.SentryOptionsFrom(cfg))
	if err != nil {
		cleanupLogger()
		return nil, err
	}
	if observes.SentryOptionsFrom(cfg) != nil {
		logger.AddHook(observes.NewSentryHook())
	}

	var tracerCfg *config.Tracer
	if cfg.Observes != nil {
		tracerCfg = cfg.Observes.Tracer
	}
	shutdown, err := observes.NewTracer(context.Background(), tracerCfg)
	if err != nil {
		flush()
		cleanupLogger()
		return nil, err
	}

	return func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warnf(context.Background(), "tracer shutdown: %v", err)
		}
		flush()
		cleanupLogger()
	}, nil
}
