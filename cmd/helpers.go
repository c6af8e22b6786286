package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/github-profile/internal/config"
	"github.com/naka-gawa/github-profile/internal/storage"
	"github.com/naka-gawa/github-profile/internal/storage/sqlite"
	"github.com/naka-gawa/github-profile/internal/usecase"
)

// newLogger builds the command logger from the root --verbose flag.
// Logs are discarded unless verbose is set, in which case they go to
// standard error so they never mix with JSON output.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// openStore opens the persistent store configured by GITHUB_PROFILE_DB,
// falling back to an in-memory store when no path is set. The returned
// closer is a no-op for the in-memory case.
func openStore(cfg config.Config) (storage.KeyValueStore, func() error, error) {
	if cfg.DBPath == "" {
		return storage.NewMemoryStore(), func() error { return nil }, nil
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, store.Close, nil
}

// resolvePlatform validates the configured platform discriminator.
func resolvePlatform(name string) (usecase.Platform, error) {
	switch usecase.Platform(name) {
	case usecase.PlatformIOS, usecase.PlatformIPadOS, usecase.PlatformMacOS,
		usecase.PlatformTVOS, usecase.PlatformVisionOS:
		return usecase.Platform(name), nil
	default:
		return "", fmt.Errorf("unknown platform %q (expected ios, ipados, macos, tvos or visionos)", name)
	}
}

// fatalf prints to stderr and exits non-zero.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
