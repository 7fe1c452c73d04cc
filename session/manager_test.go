package session

import (
	"context"
	"errors"
	"testing"

	"github.com/ncobase/coursenav/ecode"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/service"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/tokenstore"
)

type fakeCred struct{ token string }

func (c *fakeCred) SetCredential(token string) { c.token = token }
func (c *fakeCred) ClearCredential()           { c.token = "" }

type fakeAuth struct {
	token string
	err   *resp.ErrorData
}

func (a *fakeAuth) Login(_ context.Context, _, _ string) resp.Response[structs.AccessToken] {
	if a.err != nil {
		return resp.Err[structs.AccessToken](a.err)
	}
	return resp.Ok(structs.AccessToken{Token: a.token})
}

type fakeProfile struct {
	users map[string]structs.User
	cred  *fakeCred
	calls int
}

func (p *fakeProfile) GetSelf(_ context.Context) resp.Response[structs.User] {
	p.calls++
	u, ok := p.users[p.cred.token]
	if !ok {
		return resp.Err[structs.User](&resp.ErrorData{Status: 401, Code: ecode.Unauthorized, Message: "Invalid token."})
	}
	return resp.Ok(u)
}

type fakeNav struct{ targets []string }

func (n *fakeNav) Navigate(_ context.Context, target string) error {
	n.targets = append(n.targets, target)
	return nil
}

type fixture struct {
	m       *Manager
	store   *tokenstore.MemoryStore
	cred    *fakeCred
	auth    *fakeAuth
	profile *fakeProfile
}

func newFixture() *fixture {
	cred := &fakeCred{}
	f := &fixture{
		store: tokenstore.NewMemoryStore(),
		cred:  cred,
		auth:  &fakeAuth{token: "good"},
		profile: &fakeProfile{cred: cred, users: map[string]structs.User{
			"good":  {ID: 1, Email: "student@example.com", Role: structs.RoleStudent},
			"admin": {ID: 2, Email: "admin@example.com", Role: structs.RoleAdmin},
		}},
	}
	f.m = New(f.store, cred, &service.Service{Auth: f.auth, Profile: f.profile})
	return f
}

func TestLoadUserWithoutToken(t *testing.T) {
	f := newFixture()
	if f.m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = true without token")
	}
	if f.m.User() != nil || f.profile.calls != 0 {
		t.Error("expected no profile request and no user")
	}

	// an established user survives a tokenless restore
	_ = f.store.Set(context.Background(), "good")
	if !f.m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = false with valid token")
	}
	_ = f.store.Remove(context.Background())
	if f.m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = true after token removal")
	}
	if u := f.m.User(); u == nil || u.ID != 1 {
		t.Errorf("User() = %+v, want untouched user", u)
	}
}

func TestLoadUser(t *testing.T) {
	f := newFixture()
	_ = f.store.Set(context.Background(), "admin")

	if !f.m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = false")
	}
	if f.cred.token != "admin" {
		t.Errorf("credential = %q, want admin", f.cred.token)
	}
	if !f.m.IsAuthenticated() || !f.m.IsAdmin() {
		t.Error("expected authenticated admin session")
	}
}

func TestLoadUserProfileFailure(t *testing.T) {
	f := newFixture()
	_ = f.store.Set(context.Background(), "good")
	f.m.LoadUser(context.Background())

	_ = f.store.Set(context.Background(), "expired")
	if f.m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = true with rejected token")
	}
	if f.m.User() != nil || f.m.IsAuthenticated() {
		t.Error("failed restore should clear the user")
	}
}

func TestLoginDoesNotPersist(t *testing.T) {
	f := newFixture()
	res := f.m.Login(context.Background(), "a@b.c", "pw")
	if !res.IsOk() || res.Result.Token != "good" {
		t.Fatalf("Login() = %+v", res)
	}
	if _, ok, _ := f.store.Get(context.Background()); ok {
		t.Error("Login() persisted the token")
	}
	if f.m.IsAuthenticated() {
		t.Error("Login() established a session")
	}
}

func TestSignIn(t *testing.T) {
	f := newFixture()
	res := f.m.SignIn(context.Background(), "a@b.c", "pw")
	if !res.IsOk() || res.Result.ID != 1 {
		t.Fatalf("SignIn() = %+v", res)
	}
	if token, _, _ := f.store.Get(context.Background()); token != "good" {
		t.Errorf("persisted token = %q", token)
	}
	if !f.m.IsAuthenticated() || f.m.IsAdmin() {
		t.Error("expected authenticated non-admin session")
	}
}

func TestSignInRejected(t *testing.T) {
	f := newFixture()
	f.auth.err = &resp.ErrorData{Status: 400, Message: "Unable to log in with provided credentials."}
	res := f.m.SignIn(context.Background(), "a@b.c", "bad")
	if res.IsOk() || res.Error.Message != f.auth.err.Message {
		t.Fatalf("SignIn() = %+v", res)
	}
	if _, ok, _ := f.store.Get(context.Background()); ok {
		t.Error("rejected sign in persisted a token")
	}
}

type failingStore struct{ tokenstore.MemoryStore }

func (s *failingStore) Get(context.Context) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func TestLoadUserStoreError(t *testing.T) {
	f := newFixture()
	m := New(&failingStore{}, f.cred, &service.Service{Auth: f.auth, Profile: f.profile})
	if m.LoadUser(context.Background()) {
		t.Fatal("LoadUser() = true on store error")
	}
}

func TestLogout(t *testing.T) {
	f := newFixture()
	nav := &fakeNav{}
	f.m.BindNavigator(nav)
	f.m.SignIn(context.Background(), "a@b.c", "pw")

	if err := f.m.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, ok, _ := f.store.Get(context.Background()); ok {
		t.Error("token still persisted")
	}
	if f.cred.token != "" {
		t.Error("credential still attached")
	}
	if f.m.IsAuthenticated() {
		t.Error("user still present after logout")
	}
	if len(nav.targets) != 1 || nav.targets[0] != DefaultLoginRoute {
		t.Errorf("navigations = %v", nav.targets)
	}
}

func TestUserReturnsCopy(t *testing.T) {
	f := newFixture()
	f.m.SignIn(context.Background(), "a@b.c", "pw")
	u := f.m.User()
	u.Role = structs.RoleAdmin
	if f.m.IsAdmin() {
		t.Error("mutating the returned user changed the session")
	}
}
