package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-profile/internal/domain"
)

// RepositorySummary aggregates star and fork figures across a
// repository collection.
type RepositorySummary struct {
	RepositoryCount int     `json:"repository_count"`
	TotalStars      int     `json:"total_stars"`
	TotalForks      int     `json:"total_forks"`
	MeanStars       float64 `json:"mean_stars"`
	MedianStars     float64 `json:"median_stars"`
	MaxStars        int     `json:"max_stars"`
}

// Summarize computes a RepositorySummary. An empty collection yields the
// zero summary.
func Summarize(repos []domain.Repository) RepositorySummary {
	summary := RepositorySummary{RepositoryCount: len(repos)}
	if len(repos) == 0 {
		return summary
	}

	starCounts := make(stats.Float64Data, 0, len(repos))
	for _, repo := range repos {
		summary.TotalStars += repo.StargazersCount
		summary.TotalForks += repo.ForksCount
		starCounts = append(starCounts, float64(repo.StargazersCount))
	}

	// These cannot fail for non-empty data.
	mean, _ := stats.Mean(starCounts)
	median, _ := stats.Median(starCounts)
	max, _ := stats.Max(starCounts)
	summary.MeanStars = mean
	summary.MedianStars = median
	summary.MaxStars = int(max)
	return summary
}
