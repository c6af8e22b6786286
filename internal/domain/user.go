// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// User is an immutable snapshot of a GitHub account profile.
// Identity is the numeric ID; Login is the unique handle used in URLs and API paths.
type User struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Name        *string `json:"name,omitempty"`
	AvatarURL   string  `json:"avatar_url"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
}

// Equal reports whether two users refer to the same account.
// Accounts are compared by ID only; the remaining fields are a
// point-in-time snapshot and may differ between refreshes.
func (u User) Equal(other User) bool {
	return u.ID == other.ID
}

// Repository is an immutable snapshot of a single GitHub repository.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           User      `json:"owner"`
	Private         bool      `json:"private"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description,omitempty"`
	Fork            bool      `json:"fork"`
	Language        *string   `json:"language,omitempty"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	DefaultBranch   string    `json:"default_branch"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Topics          []string  `json:"topics"`
}

// Equal reports whether two repository values refer to the same entity.
// Comparison is by ID only, so a repository refreshed mid-session still
// matches its earlier snapshot even when counts or metadata moved.
func (r Repository) Equal(other Repository) bool {
	return r.ID == other.ID
}

// LanguageStat is the number of repositories written in one language.
// It is derived from a repository collection and never persisted.
type LanguageStat struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}
