package router

import (
	"context"
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	r, err := New(&fakeSession{})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		target string
		name   string
		path   string
		param  string
	}{
		{"/", RouteHome, "/", ""},
		{"home", RouteHome, "/", ""},
		{"/login", RouteLogin, "/login", ""},
		{"/courses/12", RouteCourse, "/courses/12", "12"},
		{"/login/", RouteLogin, "/login", ""},
		{"/courses/12/", RouteCourse, "/courses/12", "12"},
		{"/does/not/exist", RouteNotFound, "/does/not/exist", ""},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			route, loc, err := r.Resolve(tt.target)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if route.Name != tt.name || loc.Path != tt.path {
				t.Errorf("Resolve() = %s %s, want %s %s", route.Name, loc.Path, tt.name, tt.path)
			}
			if loc.Param("courseId") != tt.param {
				t.Errorf("courseId = %q, want %q", loc.Param("courseId"), tt.param)
			}
		})
	}

	if _, _, err := r.Resolve("nowhere"); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("Resolve(nowhere) error = %v", err)
	}
}

func TestPushUnauthenticated(t *testing.T) {
	s := &fakeSession{}
	r, _ := New(s)

	loc, err := r.Push(context.Background(), "/")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Name != RouteLogin || r.Current().Name != RouteLogin {
		t.Errorf("Push(/) = %+v, want login", loc)
	}
}

func TestPushCatchAllRedirectsHome(t *testing.T) {
	r, _ := New(&fakeSession{user: student})
	loc, err := r.Push(context.Background(), "/unknown/page")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Name != RouteHome {
		t.Errorf("Push() = %+v, want home", loc)
	}
}

func TestPushRestoresSession(t *testing.T) {
	s := &fakeSession{restoreTo: student}
	r, _ := New(s)
	loc, err := r.PushNamed(context.Background(), RouteCourse, map[string]string{"courseId": "5"})
	if err != nil {
		t.Fatal(err)
	}
	if loc.Path != "/courses/5" || s.loads != 1 {
		t.Errorf("Push() = %+v, loads = %d", loc, s.loads)
	}

	// the restored session is reused by later navigations
	if _, err := r.Push(context.Background(), "/"); err != nil {
		t.Fatal(err)
	}
	if s.loads != 1 {
		t.Errorf("loads = %d, want 1", s.loads)
	}
}

func TestPushAdminRouteAsStudentGoesBack(t *testing.T) {
	r, _ := New(&fakeSession{user: student})
	if _, err := r.Push(context.Background(), "/courses/9"); err != nil {
		t.Fatal(err)
	}
	loc, err := r.Push(context.Background(), "/admin")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Name != RouteCourse || loc.Param("courseId") != "9" {
		t.Errorf("Push(/admin) = %+v, want back to course 9", loc)
	}
}

func TestPushAdminRouteAfterRoleChangeGoesToLanding(t *testing.T) {
	s := &fakeSession{user: admin}
	r, _ := New(s)
	if _, err := r.Push(context.Background(), "/admin/"); err != nil {
		t.Fatal(err)
	}
	if r.Current().Name != RouteAdmin {
		t.Fatalf("Current() = %+v, want admin", r.Current())
	}

	s.user = student
	loc, err := r.Push(context.Background(), "/admin")
	if err != nil {
		t.Fatalf("Push(/admin) error = %v", err)
	}
	if loc.Name != RouteHome {
		t.Errorf("Push(/admin) = %+v, want home", loc)
	}
}

func TestPushRedirectLoop(t *testing.T) {
	routes := []Route{
		{Name: "home", Path: "/", Redirect: "a"},
		{Name: "login", Path: "/login"},
		{Name: "a", Path: "/a", Redirect: "b"},
		{Name: "b", Path: "/b", Redirect: "a"},
	}
	r, err := New(&fakeSession{}, WithRoutes(routes), WithMaxRedirects(3))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Push(context.Background(), "/a"); !errors.Is(err, ErrRedirectLoop) {
		t.Errorf("Push() error = %v, want redirect loop", err)
	}
	if r.Current() != nil {
		t.Error("failed navigation committed a location")
	}
}

func TestNewValidatesTargets(t *testing.T) {
	if _, err := New(&fakeSession{}, WithTargets("dashboard", "")); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("New() error = %v", err)
	}
}

func TestNavigate(t *testing.T) {
	r, _ := New(&fakeSession{user: student})
	if err := r.Navigate(context.Background(), RouteLogin); err != nil {
		t.Fatal(err)
	}
	if r.Current().Path != "/login" {
		t.Errorf("Current() = %+v", r.Current())
	}
}

func TestNewRejectsDuplicateRoutes(t *testing.T) {
	routes := append(DefaultRoutes(), Route{Name: RouteHome, Path: "/again"})
	if _, err := New(&fakeSession{}, WithRoutes(routes)); err == nil {
		t.Error("New() accepted duplicate route names")
	}
}
