package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_OpenRequiresPath(t *testing.T) {
	_, err := Open("   ")
	assert.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	values, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, values)

	require.NoError(t, store.Set(ctx, "history:ios", []string{"alice", "bob"}))
	values, err = store.Get(ctx, "history:ios")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, values)

	// Set replaces the previous value in full.
	require.NoError(t, store.Set(ctx, "history:ios", []string{"carol"}))
	values, err = store.Get(ctx, "history:ios")
	require.NoError(t, err)
	assert.Equal(t, []string{"carol"}, values)

	require.NoError(t, store.Delete(ctx, "history:ios"))
	values, err = store.Get(ctx, "history:ios")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "history:ios", []string{"alice"}))
	require.NoError(t, store.Set(ctx, "history:tvos", []string{"bob"}))
	require.NoError(t, store.Delete(ctx, "history:ios"))

	values, err := store.Get(ctx, "history:tvos")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, values)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "favorites", []string{"alice"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	values, err := reopened.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, values)
}
