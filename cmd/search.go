package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/gateway"
	"github.com/naka-gawa/github-profile/internal/presentation"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Searches GitHub users and outputs matches as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		cfg, err := config.Load()
		if err != nil {
			fatalf("Failed to load configuration: %v", err)
		}
		githubGateway, err := gateway.NewGitHubGateway(cfg.Token, logger)
		if err != nil {
			fatalf("Failed to create GitHub gateway: %v", err)
		}

		users, err := githubGateway.SearchUsers(ctx, args[0])
		if err != nil {
			fatalf("Failed to search users: %v", err)
		}

		views := make([]presentation.ProfileView, 0, len(users))
		for _, user := range users {
			views = append(views, presentation.ProjectUser(user))
		}
		jsonData, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			fatalf("Failed to marshal results to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
