package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	app "github.com/okian/draftintel/internal/app"
	"github.com/okian/draftintel/internal/config"
	"github.com/okian/draftintel/pkg/logger"
)

// overrides are flag values applied on top of the loaded configuration.
type overrides struct {
	leagueID    string
	userID      string
	baseURL     string
	concurrency int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var o overrides

	rootCmd := &cobra.Command{
		Use:           "draft-report",
		Short:         "Rank a Sleeper league's owners by draft hit rate",
		Long:          "draft-report fetches a Sleeper league's drafts, scores every owner on how many picks are still rostered, and prints the ranked result.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.leagueID, "league", "", "league id (overrides SLEEPER_LEAGUE_ID)")
	flags.StringVar(&o.userID, "user", "", "user id treated as you (overrides SLEEPER_USER_ID)")
	flags.StringVar(&o.baseURL, "base-url", "", "Sleeper API root (overrides SLEEPER_BASE_URL)")
	flags.IntVar(&o.concurrency, "concurrency", 0, "parallel draft fetches (overrides SLEEPER_FETCH_CONCURRENCY)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		newAnalyzeCmd(&o),
		newOwnersCmd(&o),
	)

	return rootCmd
}

// buildService loads configuration, applies flag overrides and returns a
// ready service. Logs go to stderr so stdout carries only the report.
func buildService(cmd *cobra.Command, o *overrides) (*app.Service, error) {
	if err := logger.Init(); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger.SetOutput(os.Stderr)
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	_ = logger.SetLevelString(level)

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	if o.leagueID != "" {
		cfg.LeagueID = o.leagueID
	}
	if o.userID != "" {
		cfg.UserID = o.userID
	}
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.concurrency != 0 {
		cfg.FetchConcurrency = o.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewFromConfig(cfg), nil
}
