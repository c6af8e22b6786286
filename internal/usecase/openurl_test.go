package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-profile/internal/domain"
)

func TestProfileURL(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		expected string
		ok       bool
	}{
		{"plain username", "octocat", "https://github.com/octocat", true},
		{"surrounding whitespace is trimmed", "  octocat  ", "https://github.com/octocat", true},
		{"empty username", "", "", false},
		{"whitespace-only username", "   ", "", false},
		{"path separator rejected", "a/b", "", false},
		{"query characters rejected", "a?b", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url, ok := ProfileURL(tc.username)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, url)
		})
	}
}

func TestRepositoryURL(t *testing.T) {
	repo := domain.Repository{ID: 1, Name: "hello", HTMLURL: "https://github.com/octocat/hello"}
	assert.Equal(t, "https://github.com/octocat/hello", RepositoryURL(repo))
}
