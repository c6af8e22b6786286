package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/usecase"
)

// historyDeps resolves the collaborators shared by the history subcommands.
func historyDeps(cmd *cobra.Command) (*usecase.SearchHistory, usecase.Platform, func() error) {
	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load configuration: %v", err)
	}
	platformName, _ := cmd.Flags().GetString("platform")
	if platformName == "" {
		platformName = cfg.Platform
	}
	platform, err := resolvePlatform(platformName)
	if err != nil {
		fatalf("Invalid platform: %v", err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		fatalf("Failed to open store: %v", err)
	}
	return usecase.NewSearchHistory(store), platform, closeStore
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Prints the platform's search history, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		history, platform, closeStore := historyDeps(cmd)
		defer closeStore()

		entries, err := history.Load(context.Background(), platform)
		if err != nil {
			fatalf("Failed to load history: %v", err)
		}
		jsonData, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fatalf("Failed to marshal results to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Removes one username from the search history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		history, platform, closeStore := historyDeps(cmd)
		defer closeStore()

		if err := history.Remove(context.Background(), args[0], platform); err != nil {
			fatalf("Failed to remove history entry: %v", err)
		}
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the platform's search history",
	Run: func(cmd *cobra.Command, args []string) {
		history, platform, closeStore := historyDeps(cmd)
		defer closeStore()

		if err := history.Clear(context.Background(), platform); err != nil {
			fatalf("Failed to clear history: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.PersistentFlags().String("platform", "", "Platform history to operate on (defaults to GITHUB_PROFILE_PLATFORM)")
}
