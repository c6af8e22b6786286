package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/domain"
	"github.com/naka-gawa/github-profile/internal/gateway"
	"github.com/naka-gawa/github-profile/internal/presentation"
	"github.com/naka-gawa/github-profile/internal/usecase"
)

// profileOutput is the JSON document the profile command prints.
type profileOutput struct {
	Profile      presentation.ProfileView     `json:"profile"`
	Repositories []presentation.RepositoryRow `json:"repositories"`
	Languages    []domain.LanguageStat        `json:"languages"`
	Summary      usecase.RepositorySummary    `json:"summary"`
	ProfileURL   string                       `json:"profile_url,omitempty"`
}

var profileCmd = &cobra.Command{
	Use:   "profile <username>",
	Short: "Fetches a user's profile and repositories and outputs them as JSON",
	Long: `Fetches the given user's profile and repository list concurrently,
records the search in the platform's history, and outputs the merged
result together with language statistics in JSON format.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		cfg, err := config.Load()
		if err != nil {
			fatalf("Failed to load configuration: %v", err)
		}
		platform, err := resolvePlatform(cfg.Platform)
		if err != nil {
			fatalf("Invalid configuration: %v", err)
		}

		store, closeStore, err := openStore(cfg)
		if err != nil {
			fatalf("Failed to open store: %v", err)
		}
		defer closeStore()

		// Inject dependencies and run the orchestrator.
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fatalf("Failed to create GitHub gateway: %v", err)
		}
		history := usecase.NewSearchHistory(store)
		orchestrator := usecase.NewProfileOrchestrator(
			githubGateway,
			usecase.WithHistory(history, platform),
			usecase.WithLogger(logger),
		)

		state := orchestrator.FetchProfile(ctx, args[0])
		if state.Phase != domain.PhaseLoaded {
			fatalf("Failed to fetch profile: %s", state.Err.Message)
		}

		output := profileOutput{
			Profile:      presentation.ProjectUser(*state.User),
			Repositories: presentation.ProjectRepositories(state.Repositories),
			Languages:    usecase.LanguageStats(state.Repositories),
			Summary:      usecase.Summarize(state.Repositories),
		}
		if url, ok := usecase.ProfileURL(state.User.Login); ok {
			output.ProfileURL = url
		}

		jsonData, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			fatalf("Failed to marshal results to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
