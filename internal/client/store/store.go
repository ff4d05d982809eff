// Package store holds the client's application state: an Auth slice (who is
// logged in) and a Files slice (what the dashboard shows). State is mutated
// only through action methods; selectors return defensive copies. The store
// is an explicitly constructed value — there is no package-level singleton —
// so tests can use a fresh container per case.
package store

import "sync"

// Store is the in-memory state container. All methods are safe for
// concurrent use.
type Store struct {
	mu    sync.RWMutex
	auth  AuthState
	files FilesState

	authSubs []func(AuthState)
}

func New() *Store {
	return &Store{}
}

// OnAuthChange registers an observer called with a snapshot of the Auth
// slice after every auth mutation. Observers run outside the store lock and
// must not call back into auth actions.
func (s *Store) OnAuthChange(fn func(AuthState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authSubs = append(s.authSubs, fn)
}

// Hydrate installs a previously persisted Auth slice during startup.
// Loading counters are reset so a resumed session never starts stuck in a
// loading state, and observers are not notified (there is nothing new to
// persist).
func (s *Store) Hydrate(st AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.LoadingCount = 0
	st.IsAuthenticated = st.User != nil
	s.auth = st
}

// mutateAuth applies fn under the lock and then notifies auth observers
// with the resulting snapshot.
func (s *Store) mutateAuth(fn func(*AuthState)) {
	s.mu.Lock()
	fn(&s.auth)
	snapshot := s.auth.clone()
	subs := s.authSubs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

func (s *Store) mutateFiles(fn func(*FilesState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.files)
}
