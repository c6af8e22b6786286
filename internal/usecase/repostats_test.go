package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-profile/internal/domain"
)

func TestSummarize(t *testing.T) {
	repos := []domain.Repository{
		{ID: 1, StargazersCount: 10, ForksCount: 2},
		{ID: 2, StargazersCount: 20, ForksCount: 3},
		{ID: 3, StargazersCount: 60, ForksCount: 5},
	}

	summary := Summarize(repos)

	assert.Equal(t, 3, summary.RepositoryCount)
	assert.Equal(t, 90, summary.TotalStars)
	assert.Equal(t, 10, summary.TotalForks)
	assert.InDelta(t, 30.0, summary.MeanStars, 0.001)
	assert.InDelta(t, 20.0, summary.MedianStars, 0.001)
	assert.Equal(t, 60, summary.MaxStars)
}

func TestSummarize_EmptyCollection(t *testing.T) {
	assert.Equal(t, RepositorySummary{}, Summarize(nil))
}
