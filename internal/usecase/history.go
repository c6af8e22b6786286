// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"strings"

	"github.com/naka-gawa/github-profile/internal/storage"
)

// Platform discriminates the per-client persisted state. Each platform
// keeps an independent search history.
type Platform string

const (
	PlatformIOS      Platform = "ios"
	PlatformIPadOS   Platform = "ipados"
	PlatformMacOS    Platform = "macos"
	PlatformTVOS     Platform = "tvos"
	PlatformVisionOS Platform = "visionos"
)

// historyLimit caps each platform's history; insertions beyond it evict
// the oldest entries.
const historyLimit = 10

// SearchHistory maintains a recency-ordered list of searched usernames,
// keyed per platform so clients never see each other's history.
type SearchHistory struct {
	store storage.KeyValueStore
}

// NewSearchHistory creates a SearchHistory over the given store.
func NewSearchHistory(store storage.KeyValueStore) *SearchHistory {
	return &SearchHistory{store: store}
}

func historyKey(platform Platform) string {
	return "history:" + string(platform)
}

// Load returns the platform's history, most recent first.
func (h *SearchHistory) Load(ctx context.Context, platform Platform) ([]string, error) {
	values, err := h.store.Get(ctx, historyKey(platform))
	if err != nil {
		return nil, err
	}
	if values == nil {
		return []string{}, nil
	}
	return values, nil
}

// Add records a search. Re-adding an existing username moves it to the
// front instead of duplicating it; the list never exceeds historyLimit.
func (h *SearchHistory) Add(ctx context.Context, username string, platform Platform) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}
	current, err := h.Load(ctx, platform)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, username)
	for _, entry := range current {
		if entry != username {
			next = append(next, entry)
		}
	}
	if len(next) > historyLimit {
		next = next[:historyLimit]
	}
	return h.store.Set(ctx, historyKey(platform), next)
}

// Remove deletes a username from the platform's history.
func (h *SearchHistory) Remove(ctx context.Context, username string, platform Platform) error {
	current, err := h.Load(ctx, platform)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(current))
	for _, entry := range current {
		if entry != username {
			next = append(next, entry)
		}
	}
	if len(next) == len(current) {
		return nil
	}
	return h.store.Set(ctx, historyKey(platform), next)
}

// Clear empties the platform's history.
func (h *SearchHistory) Clear(ctx context.Context, platform Platform) error {
	return h.store.Delete(ctx, historyKey(platform))
}
