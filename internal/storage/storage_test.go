package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	values, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, values)

	require.NoError(t, store.Set(ctx, "key", []string{"a", "b"}))
	values, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)

	require.NoError(t, store.Delete(ctx, "key"))
	values, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	original := []string{"a"}
	require.NoError(t, store.Set(ctx, "key", original))

	// Mutating either the input or a loaded value must not leak into the store.
	original[0] = "mutated"
	loaded, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, loaded)

	loaded[0] = "mutated"
	again, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "key", nil), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "key"), context.Canceled)
}
