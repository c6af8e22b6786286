package usecase

import (
	"net/url"
	"strings"

	"github.com/naka-gawa/github-profile/internal/domain"
)

// ProfileURL builds the github.com URL for a username. It returns false
// for usernames that cannot form a well-formed URL (empty after trimming,
// or containing path separators or control characters).
func ProfileURL(username string) (string, bool) {
	username = strings.TrimSpace(username)
	if username == "" || strings.ContainsAny(username, "/?#%") {
		return "", false
	}
	u := url.URL{Scheme: "https", Host: "github.com", Path: "/" + username}
	parsed, err := url.Parse(u.String())
	if err != nil || parsed.Host != "github.com" {
		return "", false
	}
	return parsed.String(), true
}

// RepositoryURL returns the repository's browser URL. The remote always
// supplies html_url, so this is total.
func RepositoryURL(repo domain.Repository) string {
	return repo.HTMLURL
}
