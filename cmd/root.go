package cmd

import (
	"fmt"

	"github.com/rkoval/brightpath/internal/app"
	"github.com/rkoval/brightpath/internal/config"
	"github.com/rkoval/brightpath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brightpath",
	Short: "Spaced-repetition practice scheduler",
	Long:  "Brightpath — local-first spaced repetition for practice items: SM-2 scheduling, difficulty ranking, and daily streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BRIGHTPATH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: config.yaml, then $HOME/.config/brightpath)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides BRIGHTPATH_LEARNER env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured path (which also covers the
// BRIGHTPATH_DB env var), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// resolveLearner returns the learner ID from --learner, falling back
// to the configured learner.
func resolveLearner(cmd *cobra.Command, cfg *config.Config) string {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l
	}
	return cfg.Learner.ID
}

// openApp loads config, opens the store, and builds the service graph.
// The caller must close the returned store.
func openApp(cmd *cobra.Command) (*store.Store, *app.App, *config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, app.New(st), cfg, nil
}
