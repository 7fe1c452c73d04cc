package router

import (
	"context"
	"testing"

	"github.com/ncobase/coursenav/structs"
)

// fakeSession restores to restoreTo when LoadUser is called
type fakeSession struct {
	user      *structs.User
	restoreTo *structs.User
	loads     int
}

func (s *fakeSession) IsAuthenticated() bool { return s.user != nil }
func (s *fakeSession) IsAdmin() bool         { return s.user.IsAdmin() }
func (s *fakeSession) LoadUser(context.Context) bool {
	s.loads++
	if s.restoreTo == nil {
		return false
	}
	s.user = s.restoreTo
	return true
}

var (
	student = &structs.User{ID: 1, Role: structs.RoleStudent}
	admin   = &structs.User{ID: 2, Role: structs.RoleAdmin}
	targets = Targets{Landing: RouteHome, Login: RouteLogin}
	metas   = []Meta{
		{},
		{AuthRequired: true},
		{AuthRequired: true, AdminRequired: true},
		{AdminRequired: true},
	}
)

func TestGuardPublicRoutesAlwaysAllowed(t *testing.T) {
	sessions := []*fakeSession{
		{},
		{restoreTo: student},
		{user: student},
		{user: admin},
	}
	for _, s := range sessions {
		for _, from := range []*Location{nil, {Name: RouteHome}} {
			d := Guard(context.Background(), s, Meta{AdminRequired: true}, from, targets)
			if !d.Allow {
				t.Errorf("public route denied for session %+v", s.user)
			}
		}
	}
}

func TestGuardAdminAllowedEverywhere(t *testing.T) {
	for _, m := range metas {
		s := &fakeSession{user: admin}
		if d := Guard(context.Background(), s, m, nil, targets); !d.Allow {
			t.Errorf("admin denied on %+v", m)
		}
		if s.loads != 0 {
			t.Errorf("admin session restored on %+v", m)
		}
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		name     string
		session  *fakeSession
		to       Meta
		from     *Location
		want     string // empty means allow
		restored bool
	}{
		{"no credential", &fakeSession{}, Meta{AuthRequired: true}, nil, RouteLogin, true},
		{"profile fetch fails", &fakeSession{}, Meta{AuthRequired: true, AdminRequired: true}, nil, RouteLogin, true},
		{"authenticated", &fakeSession{user: student}, Meta{AuthRequired: true}, nil, "", false},
		{"restored", &fakeSession{restoreTo: student}, Meta{AuthRequired: true}, nil, "", true},
		{"restored admin", &fakeSession{restoreTo: admin}, Meta{AuthRequired: true, AdminRequired: true}, nil, "", true},
		{"restored non-admin on admin route", &fakeSession{restoreTo: student}, Meta{AuthRequired: true, AdminRequired: true}, &Location{Name: RouteCourse}, RouteHome, true},
		{"known non-admin on admin route", &fakeSession{user: student}, Meta{AuthRequired: true, AdminRequired: true}, nil, RouteHome, false},
		{"known non-admin goes back", &fakeSession{user: student}, Meta{AuthRequired: true, AdminRequired: true}, &Location{Name: RouteCourse, Params: map[string]string{"courseId": "3"}}, RouteCourse, false},
		{"unnamed origin", &fakeSession{user: student}, Meta{AuthRequired: true, AdminRequired: true}, &Location{}, RouteHome, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Guard(context.Background(), tt.session, tt.to, tt.from, targets)
			if tt.want == "" {
				if !d.Allow || d.Redirect != nil {
					t.Fatalf("Guard() = %+v, want allow", d)
				}
			} else {
				if d.Allow || d.Redirect == nil {
					t.Fatalf("Guard() = %+v, want redirect to %s", d, tt.want)
				}
				if d.Redirect.Name != tt.want {
					t.Errorf("redirect = %s, want %s", d.Redirect.Name, tt.want)
				}
			}
			if (tt.session.loads > 0) != tt.restored {
				t.Errorf("loads = %d, restored = %v", tt.session.loads, tt.restored)
			}
		})
	}
}

func TestGuardNonAdminNeverSentToLogin(t *testing.T) {
	for _, s := range []*fakeSession{{user: student}, {restoreTo: student}} {
		d := Guard(context.Background(), s, Meta{AuthRequired: true, AdminRequired: true}, nil, targets)
		if d.Allow || d.Redirect.Name != RouteHome {
			t.Errorf("Guard() = %+v, want landing", d)
		}
	}
}
