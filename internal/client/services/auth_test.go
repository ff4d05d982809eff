package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filebox/filebox/internal/client/api"
	"github.com/filebox/filebox/internal/client/models"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/logging"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func success[T any](status int, data T) api.Result[T] {
	return api.Result[T]{Status: status, Data: &data}
}

func failure[T any](status int, msg string) api.Result[T] {
	return api.Result[T]{Status: status, Error: msg}
}

func authOK() api.Result[api.AuthResponse] {
	return success(http.StatusOK, api.AuthResponse{
		AccessToken: "tok1",
		User:        &models.User{ID: "u1", Email: "a@b.com"},
	})
}

// ---- fake auth API ----

type fakeAuthAPI struct {
	loginRes   api.Result[api.AuthResponse]
	loginCalls int
	lastEmail  string
	lastPass   string

	registerRes   api.Result[api.AuthResponse]
	registerCalls int

	currentUserRes   api.Result[models.User]
	currentUserCalls int

	healthRes api.Result[api.HealthResponse]
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) api.Result[api.AuthResponse] {
	f.loginCalls++
	f.lastEmail, f.lastPass = email, password
	return f.loginRes
}

func (f *fakeAuthAPI) Register(ctx context.Context, email, password string) api.Result[api.AuthResponse] {
	f.registerCalls++
	f.lastEmail, f.lastPass = email, password
	return f.registerRes
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) api.Result[models.User] {
	f.currentUserCalls++
	return f.currentUserRes
}

func (f *fakeAuthAPI) Health(ctx context.Context) api.Result[api.HealthResponse] {
	return f.healthRes
}

func newAuthService(fake *fakeAuthAPI) (*AuthService, *store.Store) {
	s := store.New()
	return NewAuthService(fake, s, testLogger()), s
}

// ---- tests ----

func TestLogin_Success(t *testing.T) {
	fake := &fakeAuthAPI{loginRes: authOK()}
	svc, s := newAuthService(fake)

	res := svc.Login(context.Background(), "a@b.com", "secret1")

	assert.True(t, res.Success)
	assert.Equal(t, "a@b.com", fake.lastEmail)
	assert.Equal(t, "secret1", fake.lastPass)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok1", s.AccessToken())
	require.NotNil(t, s.User())
	assert.Equal(t, models.User{ID: "u1", Email: "a@b.com"}, *s.User())
	assert.Equal(t, 0, s.Auth().LoadingCount)
}

func TestLogin_APIFailure(t *testing.T) {
	fake := &fakeAuthAPI{loginRes: failure[api.AuthResponse](http.StatusUnauthorized, "Invalid credentials")}
	svc, s := newAuthService(fake)

	res := svc.Login(context.Background(), "a@b.com", "wrong")

	assert.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Error)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, s.Auth().LoadingCount)
}

func TestLogin_MissingTokenOrUser(t *testing.T) {
	tests := []struct {
		name string
		resp api.AuthResponse
	}{
		{"no user", api.AuthResponse{AccessToken: "tok1"}},
		{"no token", api.AuthResponse{User: &models.User{ID: "u1", Email: "a@b.com"}}},
		{"empty", api.AuthResponse{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAuthAPI{loginRes: success(http.StatusOK, tc.resp)}
			svc, s := newAuthService(fake)

			res := svc.Login(context.Background(), "a@b.com", "secret1")

			assert.False(t, res.Success)
			assert.Equal(t, "No token or user received", res.Error)
			assert.False(t, s.IsAuthenticated())
		})
	}
}

func TestRegister_PasswordMismatchShortCircuits(t *testing.T) {
	fake := &fakeAuthAPI{}
	svc, s := newAuthService(fake)

	res := svc.Register(context.Background(), "a@b.com", "abc", "xyz")

	assert.False(t, res.Success)
	assert.Equal(t, "Passwords do not match", res.Error)
	// Pre-flight validation: no network call, no loading change.
	assert.Equal(t, 0, fake.registerCalls)
	assert.Equal(t, 0, s.Auth().LoadingCount)
}

func TestRegister_ShortPasswordShortCircuits(t *testing.T) {
	fake := &fakeAuthAPI{}
	svc, _ := newAuthService(fake)

	res := svc.Register(context.Background(), "a@b.com", "abc", "abc")

	assert.False(t, res.Success)
	assert.Equal(t, "Password must be at least 6 characters", res.Error)
	assert.Equal(t, 0, fake.registerCalls)
}

func TestRegister_Success(t *testing.T) {
	fake := &fakeAuthAPI{registerRes: authOK()}
	svc, s := newAuthService(fake)

	res := svc.Register(context.Background(), "a@b.com", "secret1", "secret1")

	assert.True(t, res.Success)
	assert.Equal(t, 1, fake.registerCalls)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok1", s.AccessToken())
}

func TestFetchCurrentUser_Success(t *testing.T) {
	fake := &fakeAuthAPI{currentUserRes: success(http.StatusOK, models.User{ID: "u1", Email: "a@b.com"})}
	svc, s := newAuthService(fake)

	res := svc.FetchCurrentUser(context.Background())

	assert.True(t, res.Success)
	require.NotNil(t, s.User())
	assert.Equal(t, "a@b.com", s.User().Email)
	assert.True(t, s.IsAuthenticated())
}

func TestFetchCurrentUser_UnauthorizedClearsSession(t *testing.T) {
	fake := &fakeAuthAPI{currentUserRes: failure[models.User](http.StatusUnauthorized, "Invalid token")}
	svc, s := newAuthService(fake)
	s.SetAuth(&models.User{ID: "u1", Email: "a@b.com"}, "stale")

	res := svc.FetchCurrentUser(context.Background())

	assert.False(t, res.Success)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.AccessToken())
}

func TestFetchCurrentUser_OtherErrorIsNonBlocking(t *testing.T) {
	fake := &fakeAuthAPI{currentUserRes: failure[models.User](http.StatusInternalServerError, "boom")}
	svc, s := newAuthService(fake)
	s.SetAuth(&models.User{ID: "u1", Email: "a@b.com"}, "tok1")

	res := svc.FetchCurrentUser(context.Background())

	// Logged only; the session stays intact.
	assert.True(t, res.Success)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok1", s.AccessToken())
}

func TestLogout_ClearsSessionLocally(t *testing.T) {
	fake := &fakeAuthAPI{}
	svc, s := newAuthService(fake)
	s.SetAuth(&models.User{ID: "u1", Email: "a@b.com"}, "tok1")

	res := svc.Logout(context.Background())

	assert.True(t, res.Success)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, "", s.AccessToken())
	// No backend call is involved.
	assert.Equal(t, 0, fake.loginCalls+fake.registerCalls+fake.currentUserCalls)
}

func TestInitAuth_NoCredentialSkipsNetwork(t *testing.T) {
	fake := &fakeAuthAPI{}
	svc, _ := newAuthService(fake)

	res := svc.InitAuth(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 0, fake.currentUserCalls)
}

func TestInitAuth_WithCredentialRefreshesUser(t *testing.T) {
	fake := &fakeAuthAPI{currentUserRes: success(http.StatusOK, models.User{ID: "u1", Email: "a@b.com"})}
	svc, s := newAuthService(fake)
	s.Hydrate(store.AuthState{
		User:        &models.User{ID: "u1", Email: "a@b.com"},
		AccessToken: "tok1",
	})

	res := svc.InitAuth(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 1, fake.currentUserCalls)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		res  api.Result[api.HealthResponse]
		want bool
	}{
		{"healthy", success(http.StatusOK, api.HealthResponse{Status: "ok"}), true},
		{"degraded", success(http.StatusOK, api.HealthResponse{Status: "down"}), false},
		{"unreachable", failure[api.HealthResponse](0, "connection refused"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newAuthService(&fakeAuthAPI{healthRes: tc.res})
			assert.Equal(t, tc.want, svc.Health(context.Background()).Success)
		})
	}
}
