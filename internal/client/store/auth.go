package store

import "github.com/filebox/filebox/internal/client/models"

// AuthState describes the authentication slice. Invariant: IsAuthenticated
// is true exactly when User is non-nil.
type AuthState struct {
	User            *models.User `json:"user"`
	AccessToken     string       `json:"accessToken"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	LoadingCount    int          `json:"-"`
}

func (a AuthState) clone() AuthState {
	c := a
	if a.User != nil {
		u := *a.User
		c.User = &u
	}
	return c
}

// PushAuthLoading marks the start of an in-flight auth request.
func (s *Store) PushAuthLoading() {
	s.mutateAuth(func(a *AuthState) {
		a.LoadingCount++
	})
}

// PopAuthLoading marks the end of an in-flight auth request. A pop at zero
// is a no-op; the counter never goes negative.
func (s *Store) PopAuthLoading() {
	s.mutateAuth(func(a *AuthState) {
		if a.LoadingCount == 0 {
			return
		}
		a.LoadingCount--
	})
}

// SetUser replaces the identity, deriving the authentication flag from it.
func (s *Store) SetUser(u *models.User) {
	s.mutateAuth(func(a *AuthState) {
		a.User = u
		a.IsAuthenticated = u != nil
	})
}

// SetAuth installs both identity and credential after a successful login or
// registration.
func (s *Store) SetAuth(u *models.User, token string) {
	s.mutateAuth(func(a *AuthState) {
		a.User = u
		a.AccessToken = token
		a.IsAuthenticated = true
	})
}

// ClearAuth drops identity and credential (logout, session expiry).
func (s *Store) ClearAuth() {
	s.mutateAuth(func(a *AuthState) {
		a.User = nil
		a.AccessToken = ""
		a.IsAuthenticated = false
	})
}

// ClearUser drops the identity but leaves the credential untouched. Kept for
// setups where the credential lives outside the store.
func (s *Store) ClearUser() {
	s.mutateAuth(func(a *AuthState) {
		a.User = nil
		a.IsAuthenticated = false
	})
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.clone()
}

// User returns a copy of the current identity, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.auth.User == nil {
		return nil
	}
	u := *s.auth.User
	return &u
}

// AccessToken returns the current credential, or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.AccessToken
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.IsAuthenticated
}
