package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xDjole/arky-go/reservation"
)

func newAvailabilityCmd() *cobra.Command {
	var serviceID, month string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Print the month calendar with per-day availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, logger, err := newClient(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cmd, client, logger)

			ctx := cmd.Context()
			if err := engine.SetService(ctx, serviceID); err != nil {
				return err
			}
			if month != "" {
				if err := navigateTo(ctx, engine, month); err != nil {
					return err
				}
			}

			fmt.Println(engine.CurrentMonth().Format("January 2006"))
			fmt.Println("Mo Tu We Th Fr Sa Su")
			for i, day := range engine.Calendar() {
				switch {
				case day.Blank:
					fmt.Print("   ")
				case day.Available:
					fmt.Printf("%2d ", day.Day)
				default:
					fmt.Print(" . ")
				}
				if (i+1)%7 == 0 {
					fmt.Println()
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceID, "service", "", "service ID (required)")
	cmd.Flags().StringVar(&month, "month", "", "target month as YYYY-MM (default: current)")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

// navigateTo walks the engine month by month so every step refetches
// the month-scoped provider timelines, the same way a UI would.
func navigateTo(ctx context.Context, engine *reservation.Engine, month string) error {
	target, err := time.ParseInLocation("2006-01", month, engine.Location())
	if err != nil {
		return fmt.Errorf("invalid --month %q: %w", month, err)
	}

	for engine.CurrentMonth().Before(target) {
		if err := engine.NextMonth(ctx); err != nil {
			return err
		}
	}
	for engine.CurrentMonth().After(target) {
		if err := engine.PrevMonth(ctx); err != nil {
			return err
		}
	}
	return nil
}
