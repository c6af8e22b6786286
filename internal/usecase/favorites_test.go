package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile/internal/storage"
)

func TestFavorites_AddIsSetLike(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(storage.NewMemoryStore())

	require.NoError(t, favorites.Add(ctx, "alice"))
	require.NoError(t, favorites.Add(ctx, "bob"))
	// Re-adding neither duplicates nor reorders, unlike the search history.
	require.NoError(t, favorites.Add(ctx, "alice"))

	entries, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, entries)
}

func TestFavorites_Membership(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(storage.NewMemoryStore())

	favorite, err := favorites.IsFavorite(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, favorite)

	require.NoError(t, favorites.Add(ctx, "alice"))
	favorite, err = favorites.IsFavorite(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, favorite)

	require.NoError(t, favorites.Remove(ctx, "alice"))
	favorite, err = favorites.IsFavorite(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, favorite)
}

func TestFavorites_DoubleToggleRestoresMembership(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(storage.NewMemoryStore())
	require.NoError(t, favorites.Add(ctx, "alice"))

	nowFavorite, err := favorites.Toggle(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, nowFavorite)

	nowFavorite, err = favorites.Toggle(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, nowFavorite)

	entries, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, entries)
}

func TestFavorites_RemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	favorites := NewFavorites(storage.NewMemoryStore())
	require.NoError(t, favorites.Add(ctx, "alice"))

	require.NoError(t, favorites.Remove(ctx, "ghost"))

	entries, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, entries)
}
