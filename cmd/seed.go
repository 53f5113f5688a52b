package cmd

import (
	"context"
	"fmt"

	"github.com/naghz/naghz/internal/seed"
	"github.com/naghz/naghz/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in demo course",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := seed.Apply(context.Background(), s.ContentRepo()); err != nil {
			return err
		}
		fmt.Printf("Seeded demo course %q.\n", seed.DemoCourseID)
		return nil
	},
}
