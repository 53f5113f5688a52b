package cmd

import (
	"fmt"
	"os"

	"github.com/naghz/naghz/internal/app"
	"github.com/naghz/naghz/internal/daily"
	"github.com/naghz/naghz/internal/grader"
	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/llm"
	"github.com/naghz/naghz/internal/store"
	"github.com/spf13/cobra"
)

// defaultUserID keys the single local learner's rows.
const defaultUserID = "local"

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startChallenge bool) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Content:        st.ContentRepo(),
		Events:         eventRepo,
		Progress:       st.ProgressRepo(),
		Hearts:         hearts.NewService(st.HeartRepo(), nil),
		Daily:          daily.NewService(st.DailyRepo(), nil),
		UserID:         defaultUserID,
		StartChallenge: startChallenge,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI-graded pages will not be scorable.")
	} else {
		opts.Grader = grader.NewService(provider, grader.DefaultConfig())
	}

	return app.Run(opts)
}
