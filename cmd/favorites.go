package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/usecase"
)

// favoritesDeps resolves the collaborators shared by the favorites subcommands.
func favoritesDeps() (*usecase.Favorites, func() error) {
	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load configuration: %v", err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		fatalf("Failed to open store: %v", err)
	}
	return usecase.NewFavorites(store), closeStore
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Prints the favorite usernames in insertion order",
	Run: func(cmd *cobra.Command, args []string) {
		favorites, closeStore := favoritesDeps()
		defer closeStore()

		entries, err := favorites.List(context.Background())
		if err != nil {
			fatalf("Failed to load favorites: %v", err)
		}
		jsonData, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fatalf("Failed to marshal results to JSON: %v", err)
		}
		fmt.Println(string(jsonData))
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Adds a username to favorites (no-op if already present)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		favorites, closeStore := favoritesDeps()
		defer closeStore()

		if err := favorites.Add(context.Background(), args[0]); err != nil {
			fatalf("Failed to add favorite: %v", err)
		}
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Removes a username from favorites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		favorites, closeStore := favoritesDeps()
		defer closeStore()

		if err := favorites.Remove(context.Background(), args[0]); err != nil {
			fatalf("Failed to remove favorite: %v", err)
		}
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <username>",
	Short: "Toggles a username's favorite state and prints the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		favorites, closeStore := favoritesDeps()
		defer closeStore()

		nowFavorite, err := favorites.Toggle(context.Background(), args[0])
		if err != nil {
			fatalf("Failed to toggle favorite: %v", err)
		}
		if nowFavorite {
			fmt.Printf("%s is now a favorite\n", args[0])
		} else {
			fmt.Printf("%s is no longer a favorite\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
}
