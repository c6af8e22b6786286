package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-profile/internal/domain"
)

func TestLanguageStats(t *testing.T) {
	testCases := []struct {
		name      string
		languages []*string
		expected  []domain.LanguageStat
	}{
		{
			name:      "counts descending, nil languages excluded",
			languages: []*string{strptr("Swift"), strptr("Swift"), strptr("Go")},
			expected:  []domain.LanguageStat{{Language: "Swift", Count: 2}, {Language: "Go", Count: 1}},
		},
		{
			name:      "ties broken by first-seen input order",
			languages: []*string{strptr("Go"), strptr("Swift"), strptr("Swift"), strptr("Go"), strptr("C")},
			expected:  []domain.LanguageStat{{Language: "Go", Count: 2}, {Language: "Swift", Count: 2}, {Language: "C", Count: 1}},
		},
		{
			name:      "all nil languages yields empty stats",
			languages: []*string{nil, nil},
			expected:  []domain.LanguageStat{},
		},
		{
			name:      "empty input yields empty stats",
			languages: nil,
			expected:  []domain.LanguageStat{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repos := make([]domain.Repository, 0, len(tc.languages))
			for i, language := range tc.languages {
				repos = append(repos, domain.Repository{ID: int64(i + 1), Language: language})
			}
			assert.Equal(t, tc.expected, LanguageStats(repos))
		})
	}
}

func TestLanguageStats_DeterministicForIdenticalInput(t *testing.T) {
	repos := []domain.Repository{
		{ID: 1, Language: strptr("Swift")},
		{ID: 2, Language: strptr("Go")},
		{ID: 3, Language: strptr("Swift")},
		{ID: 4, Language: strptr("Go")},
	}
	first := LanguageStats(repos)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, LanguageStats(repos))
	}
}
