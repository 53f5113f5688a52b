package cmd

import (
	"github.com/naghz/naghz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "naghz",
	Short: "Terminal lesson player",
	Long:  "Naghz — a terminal app for working through interactive lessons, quizzes, and daily challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

// learnCmd is an explicit alias for the bare root command.
var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Launch the interactive lesson player",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NAGHZ_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(heartsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NAGHZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
