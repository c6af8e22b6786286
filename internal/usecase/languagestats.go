package usecase

import (
	"sort"

	"github.com/naka-gawa/github-profile/internal/domain"
)

// LanguageStats groups a repository collection by language and counts
// occurrences. Repositories without a language are excluded. The result
// is sorted by descending count; ties keep first-seen input order, so the
// output is deterministic for identical input.
func LanguageStats(repos []domain.Repository) []domain.LanguageStat {
	counts := make(map[string]int)
	order := []string{}
	for _, repo := range repos {
		if repo.Language == nil {
			continue
		}
		if _, seen := counts[*repo.Language]; !seen {
			order = append(order, *repo.Language)
		}
		counts[*repo.Language]++
	}

	stats := make([]domain.LanguageStat, 0, len(order))
	for _, language := range order {
		stats = append(stats, domain.LanguageStat{Language: language, Count: counts[language]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}
