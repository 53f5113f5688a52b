package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/naghz/naghz/internal/hearts"
	"github.com/naghz/naghz/internal/store"
	"github.com/spf13/cobra"
)

var heartsCmd = &cobra.Command{
	Use:   "hearts",
	Short: "Show the current heart balance",
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

		svc := hearts.NewService(s.HeartRepo(), nil)
		ledger, err := svc.Refill(context.Background(), defaultUserID)
		if err != nil {
			return err
		}

		meter := strings.Repeat("♥ ", ledger.Hearts) +
			strings.Repeat("♡ ", hearts.Max-ledger.Hearts)
		fmt.Printf("%s (%d/%d)\n", strings.TrimSpace(meter), ledger.Hearts, hearts.Max)

		if ledger.Hearts < hearts.Max {
			left := hearts.Remaining(ledger.UpdatedAt, time.Now())
			if left == 0 {
				left = hearts.RegenWindow
			}
			total := int(left.Round(time.Second).Seconds())
			fmt.Printf("Next heart in %d:%02d\n", total/60, total%60)
		}
		return nil
	},
}
