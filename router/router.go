package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/ncobase/coursenav/logging/logger"
)

// DefaultMaxRedirects bounds the redirects followed by one navigation
const DefaultMaxRedirects = 8

// Router resolves navigation targets, guards them and tracks the current location
type Router struct {
	session      Session
	routes       []Route
	matcher      *matcher
	targets      Targets
	maxRedirects int

	mu      sync.RWMutex
	current *Location
}

// Option configures the router
type Option func(*Router)

// WithRoutes replaces the route table
func WithRoutes(routes []Route) Option {
	return func(r *Router) { r.routes = routes }
}

// WithTargets sets the landing and login route names
func WithTargets(landing, login string) Option {
	return func(r *Router) {
		if landing != "" {
			r.targets.Landing = landing
		}
		if login != "" {
			r.targets.Login = login
		}
	}
}

// WithMaxRedirects sets the redirect bound
func WithMaxRedirects(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.maxRedirects = n
		}
	}
}

// New creates a router over the default route table
func New(s Session, opts ...Option) (*Router, error) {
	r := &Router{
		session:      s,
		routes:       DefaultRoutes(),
		targets:      Targets{Landing: RouteHome, Login: RouteLogin},
		maxRedirects: DefaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := validateRoutes(r.routes); err != nil {
		return nil, err
	}
	r.matcher = newMatcher(r.routes)
	for _, name := range []string{r.targets.Landing, r.targets.Login} {
		if _, ok := r.matcher.routes[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, name)
		}
	}
	return r, nil
}

// Current returns the committed location, nil before the first navigation
func (r *Router) Current() *Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return nil
	}
	loc := *r.current
	return &loc
}

// Resolve matches a path or route name without guarding it
func (r *Router) Resolve(target string) (Route, Location, error) {
	return r.matcher.match(parseTarget(target))
}

// Push navigates to a path or route name
func (r *Router) Push(ctx context.Context, target string) (Location, error) {
	return r.PushLocation(ctx, parseTarget(target))
}

// PushNamed navigates to a named route with path params
func (r *Router) PushNamed(ctx context.Context, name string, params map[string]string) (Location, error) {
	return r.PushLocation(ctx, Location{Name: name, Params: params})
}

// PushLocation follows static and guard redirects until a location is
// allowed, then commits it.
func (r *Router) PushLocation(ctx context.Context, target Location) (Location, error) {
	from := r.Current()

	for hop := 0; hop <= r.maxRedirects; hop++ {
		route, loc, err := r.matcher.match(target)
		if err != nil {
			return Location{}, err
		}

		if route.Redirect != "" {
			logger.Debugf(ctx, "route %s redirects to %s", loc.String(), route.Redirect)
			target = parseTarget(route.Redirect)
			continue
		}

		d := Guard(ctx, r.session, route.Meta, from, r.targets)
		if d.Allow {
			r.mu.Lock()
			r.current = &loc
			r.mu.Unlock()
			logger.Debugf(ctx, "navigated to %s", loc.String())
			return loc, nil
		}

		target = *d.Redirect
		// the origin can itself be the denied route once the role changed
		if target.Name == route.Name {
			target = Location{Name: r.targets.Landing}
		}
		logger.Debugf(ctx, "guard redirected %s to %s", loc.String(), target.String())
	}

	return Location{}, fmt.Errorf("%w: navigation to %s", ErrRedirectLoop, target.String())
}

// Navigate implements the session navigator
func (r *Router) Navigate(ctx context.Context, target string) error {
	_, err := r.Push(ctx, target)
	return err
}
