package persist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/filebox/filebox/internal/client/models"
	"github.com/filebox/filebox/internal/client/repositories/metadata"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAdapter(t *testing.T) (*Adapter, metadata.Repository) {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:persist-"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	return NewAdapter(repo, testLogger()), repo
}

func TestAdapter_RoundTripResetsLoadingCount(t *testing.T) {
	a, _ := newAdapter(t)
	ctx := context.Background()

	in := store.AuthState{
		User:            &models.User{ID: "u1", Email: "a@b.com"},
		AccessToken:     "tok1",
		IsAuthenticated: true,
		LoadingCount:    5, // must not survive the round trip
	}
	require.NoError(t, a.Save(ctx, in))

	out, ok := a.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, in.User, out.User)
	assert.Equal(t, "tok1", out.AccessToken)
	assert.True(t, out.IsAuthenticated)

	s := store.New()
	s.Hydrate(out)
	assert.Equal(t, 0, s.Auth().LoadingCount)
	assert.True(t, s.IsAuthenticated())
}

func TestAdapter_LoadMissingSnapshot(t *testing.T) {
	a, _ := newAdapter(t)

	st, ok := a.Load(context.Background())
	assert.False(t, ok)
	assert.Nil(t, st.User)
}

func TestAdapter_LoadCorruptSnapshotFallsBack(t *testing.T) {
	a, repo := newAdapter(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SnapshotKey, []byte(`{not json`)))

	_, ok := a.Load(ctx)
	assert.False(t, ok)
}

func TestAdapter_LoadIncompatibleVersionFallsBack(t *testing.T) {
	a, repo := newAdapter(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, SnapshotKey, []byte(`{"version":99,"accessToken":"tok1"}`)))

	_, ok := a.Load(ctx)
	assert.False(t, ok)
}

func TestAdapter_AnonymousStateRemovesSnapshot(t *testing.T) {
	a, _ := newAdapter(t)
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, store.AuthState{
		User:            &models.User{ID: "u1", Email: "a@b.com"},
		AccessToken:     "tok1",
		IsAuthenticated: true,
	}))
	require.NoError(t, a.Save(ctx, store.AuthState{}))

	_, ok := a.Load(ctx)
	assert.False(t, ok)
}

func TestAdapter_AttachMirrorsEveryAuthMutation(t *testing.T) {
	a, _ := newAdapter(t)
	ctx := context.Background()

	s := store.New()
	a.Attach(s)

	s.SetAuth(&models.User{ID: "u1", Email: "a@b.com"}, "tok1")

	out, ok := a.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok1", out.AccessToken)

	s.ClearAuth()

	_, ok = a.Load(ctx)
	assert.False(t, ok)
}
