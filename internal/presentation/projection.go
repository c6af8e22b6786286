// Package presentation maps domain entities to display-ready value
// objects. It formats, it never decides; all logic stays upstream in the
// use cases and the orchestrator.
package presentation

import (
	"fmt"

	"github.com/naka-gawa/github-profile/internal/domain"
)

// ProfileView is the display model for one user profile.
type ProfileView struct {
	Login          string `json:"login"`
	DisplayName    string `json:"display_name"`
	AvatarURL      string `json:"avatar_url"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	FollowersText  string `json:"followers"`
	FollowingText  string `json:"following"`
	PublicRepoText string `json:"public_repos"`
}

// RepositoryRow is the display model for one repository list entry.
type RepositoryRow struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersText  string `json:"stars"`
	ForksText       string `json:"forks"`
	UpdatedDateText string `json:"updated"`
	URL             string `json:"url"`
}

// StateView renders one ViewState for a text consumer.
type StateView struct {
	Phase        string          `json:"phase"`
	Message      string          `json:"message,omitempty"`
	Profile      *ProfileView    `json:"profile,omitempty"`
	Repositories []RepositoryRow `json:"repositories,omitempty"`
}

// ProjectUser builds the profile display model. The display name falls
// back to the login when the account has no name set.
func ProjectUser(user domain.User) ProfileView {
	view := ProfileView{
		Login:          user.Login,
		DisplayName:    user.Login,
		AvatarURL:      user.AvatarURL,
		FollowersText:  FormatCount(user.Followers),
		FollowingText:  FormatCount(user.Following),
		PublicRepoText: FormatCount(user.PublicRepos),
	}
	if user.Name != nil && *user.Name != "" {
		view.DisplayName = *user.Name
	}
	if user.Bio != nil {
		view.Bio = *user.Bio
	}
	if user.Location != nil {
		view.Location = *user.Location
	}
	return view
}

// ProjectRepository builds one repository row.
func ProjectRepository(repo domain.Repository) RepositoryRow {
	row := RepositoryRow{
		Name:           repo.Name,
		Description:    "No description",
		Language:       "Unknown",
		StargazersText: FormatCount(repo.StargazersCount),
		ForksText:      FormatCount(repo.ForksCount),
		URL:            repo.HTMLURL,
	}
	if repo.Description != nil && *repo.Description != "" {
		row.Description = *repo.Description
	}
	if repo.Language != nil {
		row.Language = *repo.Language
	}
	if !repo.UpdatedAt.IsZero() {
		row.UpdatedDateText = repo.UpdatedAt.Format("2006-01-02")
	}
	return row
}

// ProjectRepositories builds rows for a whole collection, preserving order.
func ProjectRepositories(repos []domain.Repository) []RepositoryRow {
	rows := make([]RepositoryRow, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, ProjectRepository(repo))
	}
	return rows
}

// ProjectState renders the full state machine value.
func ProjectState(state domain.ViewState) StateView {
	view := StateView{Phase: state.Phase.String()}
	switch state.Phase {
	case domain.PhaseLoaded:
		profile := ProjectUser(*state.User)
		view.Profile = &profile
		view.Repositories = ProjectRepositories(state.Repositories)
	case domain.PhaseError:
		view.Message = state.Err.Message
	}
	return view
}

// FormatCount abbreviates large counts the way the profile screens
// display them: 999 stays as-is, 1200 becomes "1.2k", 3400000 "3.4M".
func FormatCount(count int) string {
	switch {
	case count >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(count)/1_000_000)) + "M"
	case count >= 1_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(count)/1_000)) + "k"
	default:
		return fmt.Sprintf("%d", count)
	}
}

func trimTrailingZero(s string) string {
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
