package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGet(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "auth.v1", []byte(`{"v":1}`)))

	got, err := repo.Get(ctx, "auth.v1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), got)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("one")))
	require.NoError(t, repo.Set(ctx, "k", []byte("two")))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestSQLiteRepository_GetMissingIsNil(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		got, err := repo.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}
