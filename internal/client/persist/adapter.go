// Package persist mirrors the auth slice of the application store to durable
// client-side storage, so a login survives a restart. Only the auth slice is
// persisted — file records are always refetched from the backend.
package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/filebox/filebox/internal/client/models"
	"github.com/filebox/filebox/internal/client/repositories/metadata"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/logging"
)

// SnapshotKey is the versioned, namespaced storage key for the auth slice.
const SnapshotKey = "auth.v1"

// snapshotVersion guards against reading snapshots written by an
// incompatible schema; bump it together with SnapshotKey.
const snapshotVersion = 1

type snapshot struct {
	Version         int          `json:"version"`
	User            *models.User `json:"user"`
	AccessToken     string       `json:"accessToken"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Adapter reads and writes auth snapshots through the metadata repository.
type Adapter struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewAdapter(repo metadata.Repository, log logging.Logger) *Adapter {
	return &Adapter{repo: repo, log: log.With("component", "persist")}
}

// Attach subscribes the adapter to the store so every auth mutation is
// mirrored to storage. Write failures are logged, never surfaced: losing a
// snapshot only costs a re-login after the next restart.
func (a *Adapter) Attach(s *store.Store) {
	s.OnAuthChange(func(st store.AuthState) {
		ctx := context.Background()
		if err := a.Save(ctx, st); err != nil {
			a.log.Error(ctx, "saving auth snapshot", "err", err)
		}
	})
}

// Save writes the auth slice to storage. An anonymous state removes the
// snapshot entirely, which is how logout and session expiry clear durable
// storage.
func (a *Adapter) Save(ctx context.Context, st store.AuthState) error {
	if !st.IsAuthenticated && st.AccessToken == "" {
		return a.repo.Delete(ctx, SnapshotKey)
	}

	data, err := json.Marshal(snapshot{
		Version:         snapshotVersion,
		User:            st.User,
		AccessToken:     st.AccessToken,
		IsAuthenticated: st.IsAuthenticated,
	})
	if err != nil {
		return fmt.Errorf("marshal auth snapshot: %w", err)
	}

	return a.repo.Set(ctx, SnapshotKey, data)
}

// Load reads the persisted auth slice. The second return value is false when
// no usable snapshot exists — absent, unreadable, or version-incompatible
// snapshots all fall back silently to the zero state.
func (a *Adapter) Load(ctx context.Context) (store.AuthState, bool) {
	data, err := a.repo.Get(ctx, SnapshotKey)
	if err != nil {
		a.log.Warn(ctx, "reading auth snapshot", "err", err)
		return store.AuthState{}, false
	}
	if data == nil {
		return store.AuthState{}, false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.log.Warn(ctx, "corrupt auth snapshot, starting clean", "err", err)
		return store.AuthState{}, false
	}
	if snap.Version != snapshotVersion {
		a.log.Warn(ctx, "incompatible auth snapshot, starting clean", "version", snap.Version)
		return store.AuthState{}, false
	}

	return store.AuthState{
		User:            snap.User,
		AccessToken:     snap.AccessToken,
		IsAuthenticated: snap.IsAuthenticated,
	}, true
}
