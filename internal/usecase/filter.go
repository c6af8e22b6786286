package usecase

import (
	"sort"
	"strings"

	"github.com/naka-gawa/github-profile/internal/domain"
)

// FilterBySearchText keeps repositories whose name or description contains
// the text, case-insensitively. A repository without a description can
// only match on its name. Input order is preserved.
func FilterBySearchText(repos []domain.Repository, text string) []domain.Repository {
	needle := strings.ToLower(text)
	filtered := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if strings.Contains(strings.ToLower(repo.Name), needle) {
			filtered = append(filtered, repo)
			continue
		}
		if repo.Description != nil && strings.Contains(strings.ToLower(*repo.Description), needle) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// FilterByLanguage keeps repositories whose language exactly matches.
// A nil filter means no filtering and returns the input unchanged.
func FilterByLanguage(repos []domain.Repository, language *string) []domain.Repository {
	if language == nil {
		return repos
	}
	filtered := make([]domain.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Language != nil && *repo.Language == *language {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// FilterBySearchTextAndLanguage applies both predicates conjunctively.
// It is equivalent to composing FilterBySearchText with FilterByLanguage.
func FilterBySearchTextAndLanguage(repos []domain.Repository, text string, language *string) []domain.Repository {
	return FilterByLanguage(FilterBySearchText(repos, text), language)
}

// UniqueLanguages collects the distinct non-nil languages of a repository
// collection, lexicographically sorted.
func UniqueLanguages(repos []domain.Repository) []string {
	seen := make(map[string]bool)
	languages := []string{}
	for _, repo := range repos {
		if repo.Language == nil || seen[*repo.Language] {
			continue
		}
		seen[*repo.Language] = true
		languages = append(languages, *repo.Language)
	}
	sort.Strings(languages)
	return languages
}
