package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's sessions and any open interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		today := domain.DateKey(time.Now())

		records, err := app.storage.Sessions().ListByDateRange(ctx, today, today)
		if err != nil {
			return fmt.Errorf("failed to list today's sessions: %w", err)
		}

		var open *domain.SessionRecord
		for _, st := range []domain.SessionType{
			domain.SessionTypeWork, domain.SessionTypeShortBreak, domain.SessionTypeLongBreak,
		} {
			open, err = app.storage.Sessions().FindOpen(ctx, today, st)
			if err != nil {
				return fmt.Errorf("failed to look up open interval: %w", err)
			}
			if open != nil {
				break
			}
		}

		focusMinutes, completed, breaks := 0, 0, 0
		for _, r := range records {
			if r.Open {
				continue
			}
			if !r.Completed {
				continue
			}
			completed++
			if r.IsWork() {
				focusMinutes += r.DurationMinutes
			} else {
				breaks++
			}
		}

		if open != nil {
			fmt.Println("🍅 Open interval")
			fmt.Printf("   Type: %s\n", domain.SessionTypeLabel(open.Type))
			fmt.Printf("   Progress: %d min\n", open.DurationMinutes)
		} else {
			fmt.Println("No open interval.")
		}

		fmt.Printf("\n📊 Today (%s):\n", today)
		fmt.Printf("   Focus time: %d min\n", focusMinutes)
		fmt.Printf("   Completed sessions: %d\n", completed)
		fmt.Printf("   Breaks taken: %d\n", breaks)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
