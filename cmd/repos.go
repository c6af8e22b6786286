package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/gateway"
	"github.com/naka-gawa/github-profile/internal/presentation"
	"github.com/naka-gawa/github-profile/internal/usecase"
)

var reposCmd = &cobra.Command{
	Use:   "repos <username>",
	Short: "Lists a user's repositories with optional filtering",
	Long: `Fetches the given user's repositories and applies the search-text
and language filters before printing the result as JSON.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		searchText, _ := cmd.Flags().GetString("search")
		language, _ := cmd.Flags().GetString("language")

		cfg, err := config.Load()
		if err != nil {
			fatalf("Failed to load configuration: %v", err)
		}
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fatalf("Failed to create GitHub gateway: %v", err)
		}

		repos, err := githubGateway.FetchUserRepositories(ctx, args[0])
		if err != nil {
			fatalf("Failed to fetch repositories: %v", err)
		}

		var languageFilter *string
		if language != "" {
			languageFilter = &language
		}
		filtered := usecase.FilterBySearchTextAndLanguage(repos, searchText, languageFilter)

		output := struct {
			Repositories []presentation.RepositoryRow `json:"repositories"`
			Languages    []string                     `json:"available_languages"`
		}{
			Repositories: presentation.ProjectRepositories(filtered),
			Languages:    usecase.UniqueLanguages(repos),
		}
		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			fatalf("Failed to marshal results to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().String("search", "", "Filter by name/description substring (case-insensitive)")
	reposCmd.Flags().String("language", "", "Filter by exact language match")
}
