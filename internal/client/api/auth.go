package api

import (
	"context"

	"github.com/filebox/filebox/internal/client/models"
)

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user,omitempty"`
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Auth is the narrow surface over the backend's auth resource. Service
// flows depend on this interface; tests substitute fakes.
type Auth interface {
	Login(ctx context.Context, email, password string) Result[AuthResponse]
	Register(ctx context.Context, email, password string) Result[AuthResponse]
	CurrentUser(ctx context.Context) Result[models.User]
	Health(ctx context.Context) Result[HealthResponse]
}

type restAuth struct {
	c *Client
}

// NewAuth returns the REST implementation of Auth over the given client.
func NewAuth(c *Client) Auth {
	return &restAuth{c: c}
}

func (a *restAuth) Login(ctx context.Context, email, password string) Result[AuthResponse] {
	return Post[AuthResponse](ctx, a.c, "/auth/login", credentials{Email: email, Password: password})
}

func (a *restAuth) Register(ctx context.Context, email, password string) Result[AuthResponse] {
	return Post[AuthResponse](ctx, a.c, "/auth/register", credentials{Email: email, Password: password})
}

func (a *restAuth) CurrentUser(ctx context.Context) Result[models.User] {
	return Get[models.User](ctx, a.c, "/users/me")
}

func (a *restAuth) Health(ctx context.Context) Result[HealthResponse] {
	return Get[HealthResponse](ctx, a.c, "/health")
}
