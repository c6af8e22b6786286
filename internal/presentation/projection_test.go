package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-profile/internal/domain"
)

func strptr(s string) *string { return &s }

func TestFormatCount(t *testing.T) {
	testCases := []struct {
		count    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{1200, "1.2k"},
		{999999, "1000k"},
		{1000000, "1M"},
		{3400000, "3.4M"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatCount(tc.count), "count %d", tc.count)
	}
}

func TestProjectUser(t *testing.T) {
	user := domain.User{
		ID:          1,
		Login:       "octocat",
		Name:        strptr("The Octocat"),
		AvatarURL:   "https://example.com/a.png",
		Bio:         strptr("A cat"),
		Location:    strptr("San Francisco"),
		Followers:   1200,
		Following:   9,
		PublicRepos: 8,
	}

	view := ProjectUser(user)
	assert.Equal(t, "octocat", view.Login)
	assert.Equal(t, "The Octocat", view.DisplayName)
	assert.Equal(t, "A cat", view.Bio)
	assert.Equal(t, "1.2k", view.FollowersText)
	assert.Equal(t, "9", view.FollowingText)
	assert.Equal(t, "8", view.PublicRepoText)
}

func TestProjectUser_DisplayNameFallsBackToLogin(t *testing.T) {
	view := ProjectUser(domain.User{ID: 1, Login: "octocat"})
	assert.Equal(t, "octocat", view.DisplayName)
	assert.Empty(t, view.Bio)
}

func TestProjectRepository(t *testing.T) {
	repo := domain.Repository{
		ID:              1,
		Name:            "Hello-World",
		Description:     strptr("My first repository"),
		Language:        strptr("Swift"),
		StargazersCount: 3400000,
		ForksCount:      42,
		HTMLURL:         "https://github.com/octocat/Hello-World",
		UpdatedAt:       time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC),
	}

	row := ProjectRepository(repo)
	assert.Equal(t, "Hello-World", row.Name)
	assert.Equal(t, "My first repository", row.Description)
	assert.Equal(t, "Swift", row.Language)
	assert.Equal(t, "3.4M", row.StargazersText)
	assert.Equal(t, "42", row.ForksText)
	assert.Equal(t, "2024-05-17", row.UpdatedDateText)
}

func TestProjectRepository_Fallbacks(t *testing.T) {
	row := ProjectRepository(domain.Repository{ID: 1, Name: "bare"})
	assert.Equal(t, "No description", row.Description)
	assert.Equal(t, "Unknown", row.Language)
	assert.Empty(t, row.UpdatedDateText)
}

func TestProjectState(t *testing.T) {
	user := domain.User{ID: 1, Login: "octocat"}
	repos := []domain.Repository{{ID: 1, Name: "Hello-World"}}

	loaded := ProjectState(domain.Loaded(user, repos))
	assert.Equal(t, "loaded", loaded.Phase)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, "octocat", loaded.Profile.Login)
	require.Len(t, loaded.Repositories, 1)

	errored := ProjectState(domain.Errored(domain.ErrUserNotFound()))
	assert.Equal(t, "error", errored.Phase)
	assert.Equal(t, "User not found.", errored.Message)
	assert.Nil(t, errored.Profile)

	idle := ProjectState(domain.Idle())
	assert.Equal(t, "idle", idle.Phase)
	assert.Empty(t, idle.Message)
}
