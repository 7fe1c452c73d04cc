package session

import (
	"context"
	"sync"

	"github.com/ncobase/coursenav/ecode"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/net/api"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/service"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/tokenstore"
)

// DefaultLoginRoute is the route name logout navigates to
const DefaultLoginRoute = "login"

// Navigator moves the application to a named route
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// Manager holds the authenticated user of the process.
// It is constructed empty; Logout tears the session down.
type Manager struct {
	store   tokenstore.Store
	cred    api.Credentialer
	auth    service.AuthServiceInterface
	profile service.ProfileServiceInterface

	loginRoute string

	mu  sync.RWMutex
	nav Navigator
	// user is nil when no session is established
	user *structs.User
}

// Option configures the manager
type Option func(*Manager)

// WithLoginRoute sets the route logout navigates to
func WithLoginRoute(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.loginRoute = name
		}
	}
}

// WithNavigator binds the navigator at construction
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) { m.nav = nav }
}

// New creates an empty session manager
func New(store tokenstore.Store, cred api.Credentialer, svc *service.Service, opts ...Option) *Manager {
	m := &Manager{
		store:      store,
		cred:       cred,
		auth:       svc.Auth,
		profile:    svc.Profile,
		loginRoute: DefaultLoginRoute,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BindNavigator binds the navigator used by Logout
func (m *Manager) BindNavigator(nav Navigator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nav = nav
}

// LoadUser restores the session from the persisted token.
// Without a token the current user is left untouched. With a token the
// profile is fetched; any failure clears the user and reports false.
func (m *Manager) LoadUser(ctx context.Context) bool {
	token, ok, err := m.store.Get(ctx)
	if err != nil {
		logger.Warnf(ctx, "failed to read persisted token: %v", err)
		return false
	}
	if !ok {
		return false
	}

	m.cred.SetCredential(token)
	res := m.profile.GetSelf(ctx)
	if !res.IsOk() {
		logger.Debugf(ctx, "session restore failed: %s", res.Error.Message)
		m.setUser(nil)
		return false
	}

	m.setUser(res.Result)
	return m.IsAuthenticated()
}

// Login exchanges credentials for a token. The token is neither persisted
// nor attached; see SignIn for the combined flow.
func (m *Manager) Login(ctx context.Context, email, password string) resp.Response[structs.AccessToken] {
	return m.auth.Login(ctx, email, password)
}

// SignIn logs in, persists the issued token and loads the profile
func (m *Manager) SignIn(ctx context.Context, email, password string) resp.Response[structs.User] {
	res := m.auth.Login(ctx, email, password)
	if !res.IsOk() {
		return resp.Err[structs.User](res.Error)
	}

	if err := m.store.Set(ctx, res.Result.Token); err != nil {
		logger.Errorf(ctx, "failed to persist token: %v", err)
		return resp.Err[structs.User](&resp.ErrorData{
			Code:    ecode.ServerErr,
			Message: err.Error(),
		})
	}

	m.cred.SetCredential(res.Result.Token)
	profile := m.profile.GetSelf(ctx)
	if !profile.IsOk() {
		m.setUser(nil)
		return profile
	}
	m.setUser(profile.Result)
	logger.Infof(ctx, "signed in as %s", profile.Result.Email)
	return profile
}

// Logout removes the persisted token, clears the in-memory user and
// navigates to the login route.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx); err != nil {
		logger.Errorf(ctx, "failed to remove persisted token: %v", err)
	}
	m.cred.ClearCredential()

	m.mu.Lock()
	m.user = nil
	nav := m.nav
	m.mu.Unlock()

	if nav == nil {
		return nil
	}
	return nav.Navigate(ctx, m.loginRoute)
}

// User returns a copy of the current user, or nil
func (m *Manager) User() *structs.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated reports whether a user is present
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsAdmin reports whether the current user is an admin
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user.IsAdmin()
}

func (m *Manager) setUser(u *structs.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u == nil {
		m.user = nil
		return
	}
	cp := *u
	m.user = &cp
}
