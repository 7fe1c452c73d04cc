package router

import (
	"errors"
	"fmt"
)

// Route names of the default table
const (
	RouteHome     = "home"
	RouteLogin    = "login"
	RouteAdmin    = "admin"
	RouteCourse   = "course"
	RouteNotFound = "not-found"
)

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrRedirectLoop  = errors.New("too many redirects")
)

// Meta holds the navigation requirements of a route
type Meta struct {
	AuthRequired  bool `json:"auth_required"`
	AdminRequired bool `json:"admin_required"`
}

// Route is a named path. A route with Redirect is never committed;
// navigation continues at the redirect target.
type Route struct {
	Name     string
	Path     string
	Meta     Meta
	Redirect string
}

// Location is a resolved navigation target
type Location struct {
	Name   string            `json:"name"`
	Path   string            `json:"path"`
	Params map[string]string `json:"params,omitempty"`
}

// String returns the path, or the name when unresolved
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Path != "" {
		return l.Path
	}
	return l.Name
}

// Param returns a path parameter
func (l *Location) Param(key string) string {
	if l == nil || l.Params == nil {
		return ""
	}
	return l.Params[key]
}

// DefaultRoutes returns the application route table. The catch-all
// must stay last.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: "/", Meta: Meta{AuthRequired: true}},
		{Name: RouteLogin, Path: "/login"},
		{Name: RouteAdmin, Path: "/admin", Meta: Meta{AuthRequired: true, AdminRequired: true}},
		{Name: RouteCourse, Path: "/courses/{courseId:[0-9]+}", Meta: Meta{AuthRequired: true}},
		{Name: RouteNotFound, Path: "/{path:.*}", Redirect: RouteHome},
	}
}

func validateRoutes(routes []Route) error {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if r.Name == "" || r.Path == "" {
			return fmt.Errorf("route %q: name and path are required", r.Name)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate route name %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}
