package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/ncobase/coursenav/net/api"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/structs"
	"github.com/ncobase/coursenav/validation/validator"
)

// AuthServiceInterface exchanges credentials for an access token
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) resp.Response[structs.AccessToken]
}

type authService struct {
	d api.Doer
}

// NewAuthService creates a new auth service
func NewAuthService(d api.Doer) AuthServiceInterface {
	return &authService{d: d}
}

// Login validates the credentials and requests a token.
// Validation failures are returned without issuing a request.
func (s *authService) Login(ctx context.Context, email, password string) resp.Response[structs.AccessToken] {
	body := &structs.LoginBody{Email: strings.TrimSpace(email), Password: password}
	if fields := validator.ValidateStruct(body); len(fields) > 0 {
		return resp.Err[structs.AccessToken](resp.Invalid(fields))
	}

	return api.Decode[structs.AccessToken](ctx, s.d, api.Request{
		Method: http.MethodPost,
		URL:    "/auth/token/",
		Data:   body,
	})
}
