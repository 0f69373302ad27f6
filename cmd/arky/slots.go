package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xDjole/arky-go/reservation"
)

func newSlotsCmd() *cobra.Command {
	var serviceID, date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List bookable slots for a day",
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

			day, err := selectDay(ctx, engine, date)
			if err != nil {
				return err
			}

			slots := engine.Slots()
			if len(slots) == 0 {
				fmt.Printf("no slots on %s\n", day.ISO)
				return nil
			}
			for _, s := range slots {
				fmt.Printf("%s  %s  provider=%s  id=%s\n", s.DateText, s.TimeText, s.ProviderID, s.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceID, "service", "", "service ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "target day as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

// selectDay navigates to the day's month, then selects the matching
// calendar cell.
func selectDay(ctx context.Context, engine *reservation.Engine, date string) (reservation.CalendarDay, error) {
	target, err := time.ParseInLocation("2006-01-02", date, engine.Location())
	if err != nil {
		return reservation.CalendarDay{}, fmt.Errorf("invalid --date %q: %w", date, err)
	}

	if err := navigateTo(ctx, engine, target.Format("2006-01")); err != nil {
		return reservation.CalendarDay{}, err
	}

	for _, day := range engine.Calendar() {
		if day.Blank || day.ISO != date {
			continue
		}
		if !day.Available {
			return reservation.CalendarDay{}, fmt.Errorf("%s has no availability", date)
		}
		engine.SelectDate(day)
		return day, nil
	}
	return reservation.CalendarDay{}, fmt.Errorf("%s is not in the loaded month", date)
}
