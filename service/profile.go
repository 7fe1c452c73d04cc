package service

import (
	"context"
	"net/http"

	"github.com/ncobase/coursenav/net/api"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/structs"
)

// ProfileServiceInterface reads the authenticated user's profile
type ProfileServiceInterface interface {
	GetSelf(ctx context.Context) resp.Response[structs.User]
}

type profileService struct {
	d api.Doer
}

// NewProfileService creates a new profile service
func NewProfileService(d api.Doer) ProfileServiceInterface {
	return &profileService{d: d}
}

// GetSelf get the current user
func (s *profileService) GetSelf(ctx context.Context) resp.Response[structs.User] {
	return api.Decode[structs.User](ctx, s.d, api.Request{
		Method: http.MethodGet,
		URL:    "/users/self/",
	})
}
