package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// matcher resolves paths and names over a mux route table
type matcher struct {
	mux    *mux.Router
	routes map[string]Route
}

func newMatcher(routes []Route) *matcher {
	m := &matcher{mux: mux.NewRouter(), routes: make(map[string]Route, len(routes))}
	for _, r := range routes {
		m.routes[r.Name] = r
		m.mux.Path(r.Path).Name(r.Name)
	}
	return m
}

// matchPath finds the route serving a path
func (m *matcher) matchPath(path string) (Route, Location, error) {
	u, err := url.Parse(path)
	if err != nil {
		return Route{}, Location{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	// "/login/" and "/login" name the same route
	if len(u.Path) > 1 {
		u.Path = strings.TrimRight(u.Path, "/")
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawPath = ""
	}
	req := &http.Request{Method: http.MethodGet, URL: u}

	var match mux.RouteMatch
	if !m.mux.Match(req, &match) || match.Route == nil {
		return Route{}, Location{}, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	r := m.routes[match.Route.GetName()]
	loc := Location{Name: r.Name, Path: u.Path}
	if len(match.Vars) > 0 {
		loc.Params = match.Vars
	}
	return r, loc, nil
}

// matchName builds the location of a named route
func (m *matcher) matchName(name string, params map[string]string) (Route, Location, error) {
	r, ok := m.routes[name]
	if !ok {
		return Route{}, Location{}, fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, v)
	}
	u, err := m.mux.Get(name).URLPath(pairs...)
	if err != nil {
		return Route{}, Location{}, fmt.Errorf("route %s: %w", name, err)
	}
	loc := Location{Name: name, Path: u.Path}
	if len(params) > 0 {
		loc.Params = params
	}
	return r, loc, nil
}

// match resolves a location by name, falling back to its path
func (m *matcher) match(loc Location) (Route, Location, error) {
	if loc.Name != "" {
		return m.matchName(loc.Name, loc.Params)
	}
	return m.matchPath(loc.Path)
}

// parseTarget turns "/path" or "name" into a location
func parseTarget(target string) Location {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, "/") {
		return Location{Path: target}
	}
	return Location{Name: target}
}
