package usecase

import (
	"context"
	"strings"

	"github.com/naka-gawa/github-profile/internal/storage"
)

const favoritesKey = "favorites"

// Favorites maintains a list of bookmarked usernames with set semantics:
// no duplicates, insertion order preserved, no cap. Unlike the search
// history, re-adding an existing entry does not move it.
type Favorites struct {
	store storage.KeyValueStore
}

// NewFavorites creates a Favorites over the given store.
func NewFavorites(store storage.KeyValueStore) *Favorites {
	return &Favorites{store: store}
}

// List returns all favorites in insertion order.
func (f *Favorites) List(ctx context.Context) ([]string, error) {
	values, err := f.store.Get(ctx, favoritesKey)
	if err != nil {
		return nil, err
	}
	if values == nil {
		return []string{}, nil
	}
	return values, nil
}

// Add appends a username unless it is already present.
func (f *Favorites) Add(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}
	current, err := f.List(ctx)
	if err != nil {
		return err
	}
	for _, entry := range current {
		if entry == username {
			return nil
		}
	}
	return f.store.Set(ctx, favoritesKey, append(current, username))
}

// Remove deletes the first matching entry.
func (f *Favorites) Remove(ctx context.Context, username string) error {
	current, err := f.List(ctx)
	if err != nil {
		return err
	}
	for i, entry := range current {
		if entry == username {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			return f.store.Set(ctx, favoritesKey, next)
		}
	}
	return nil
}

// IsFavorite reports membership.
func (f *Favorites) IsFavorite(ctx context.Context, username string) (bool, error) {
	current, err := f.List(ctx)
	if err != nil {
		return false, err
	}
	for _, entry := range current {
		if entry == username {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership and reports the resulting state.
func (f *Favorites) Toggle(ctx context.Context, username string) (bool, error) {
	favorite, err := f.IsFavorite(ctx, username)
	if err != nil {
		return false, err
	}
	if favorite {
		return false, f.Remove(ctx, username)
	}
	return true, f.Add(ctx, username)
}
