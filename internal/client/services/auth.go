package services

import (
	"context"
	"strings"

	"github.com/filebox/filebox/internal/client/api"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/logging"
)

const minPasswordLength = 6

// AuthService orchestrates the authentication flows: login, register,
// current-user refresh, logout, and the backend liveness probe.
type AuthService struct {
	api   api.Auth
	store *store.Store
	log   logging.Logger
}

func NewAuthService(a api.Auth, s *store.Store, log logging.Logger) *AuthService {
	return &AuthService{api: a, store: s, log: log.With("component", "auth")}
}

// Login authenticates against the backend and installs user and credential
// into the store on success. The loading counter is balanced on every exit
// path.
func (s *AuthService) Login(ctx context.Context, email, password string) Result {
	s.store.PushAuthLoading()
	defer s.store.PopAuthLoading()

	res := s.api.Login(ctx, email, password)
	if !res.OK() {
		return fail(res.Error)
	}
	if res.Data == nil || res.Data.AccessToken == "" || res.Data.User == nil {
		return fail("No token or user received")
	}

	s.store.SetAuth(res.Data.User, res.Data.AccessToken)
	s.log.Info(ctx, "logged in", "email", res.Data.User.Email)
	return ok()
}

// Register validates locally first — a mismatch or short password never
// reaches the network and never touches the loading counter — then follows
// the login contract.
func (s *AuthService) Register(ctx context.Context, email, password, confirm string) Result {
	if password != confirm {
		return fail("Passwords do not match")
	}
	if len(password) < minPasswordLength {
		return fail("Password must be at least 6 characters")
	}
	if strings.TrimSpace(email) == "" {
		return fail("Email is required")
	}

	s.store.PushAuthLoading()
	defer s.store.PopAuthLoading()

	res := s.api.Register(ctx, email, password)
	if !res.OK() {
		return fail(res.Error)
	}
	if res.Data == nil || res.Data.AccessToken == "" || res.Data.User == nil {
		return fail("No token or user received")
	}

	s.store.SetAuth(res.Data.User, res.Data.AccessToken)
	s.log.Info(ctx, "registered", "email", res.Data.User.Email)
	return ok()
}

// FetchCurrentUser refreshes the identity from the backend. A 401 clears the
// auth slice (session invalidation); any other failure is logged only, since
// the call is typically made opportunistically at startup.
func (s *AuthService) FetchCurrentUser(ctx context.Context) Result {
	s.store.PushAuthLoading()
	defer s.store.PopAuthLoading()

	res := s.api.CurrentUser(ctx)
	switch {
	case res.OK():
		s.store.SetUser(res.Data)
		return ok()
	case res.Unauthorized():
		s.log.Info(ctx, "credential rejected, clearing session")
		s.store.ClearAuth()
		return fail(SessionExpiredError)
	default:
		s.log.Warn(ctx, "fetching current user", "status", res.Status, "err", res.Error)
		return ok()
	}
}

// Logout is local-only: it clears the auth slice, which in turn removes the
// durable snapshot through the persistence observer. Navigation afterwards
// is the view's responsibility.
func (s *AuthService) Logout(ctx context.Context) Result {
	s.store.ClearAuth()
	s.log.Info(ctx, "logged out")
	return ok()
}

// InitAuth runs at startup after the persisted session is rehydrated: when a
// credential is present, the identity is refreshed (and a stale credential
// is detected) via FetchCurrentUser.
func (s *AuthService) InitAuth(ctx context.Context) Result {
	if s.store.AccessToken() == "" {
		return ok()
	}
	return s.FetchCurrentUser(ctx)
}

// Health probes the backend liveness endpoint.
func (s *AuthService) Health(ctx context.Context) Result {
	res := s.api.Health(ctx)
	if !res.OK() {
		return fail(res.Error)
	}
	if res.Data == nil || !strings.EqualFold(res.Data.Status, "ok") {
		return fail("server unavailable")
	}
	return ok()
}
