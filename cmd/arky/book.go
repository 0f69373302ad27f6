package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xDjole/arky-go/reservation"
	"github.com/0xDjole/arky-go/telemetry"
)

func newBookCmd() *cobra.Command {
	var serviceID, date, at, paymentMethod, promoCode string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book one slot: select, add to cart, check out",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			shutdown, err := telemetry.Setup(ctx, telemetry.ConfigFromEnv("arky-cli"))
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(shutdownCtx)
			}()

			client, logger, err := newClient(cmd)
			if err != nil {
				return err
			}
			engine := newEngine(cmd, client, logger)

			if err := engine.SetService(ctx, serviceID); err != nil {
				return err
			}
			if _, err := selectDay(ctx, engine, date); err != nil {
				return err
			}

			var picked *reservation.Slot
			for _, s := range engine.Slots() {
				if s.TimeText == at {
					slot := s
					picked = &slot
					break
				}
			}
			if picked == nil {
				return fmt.Errorf("no slot at %s on %s", at, date)
			}

			engine.SelectSlot(*picked)
			engine.AddToCart()

			if quote, err := engine.Quote(ctx, reservation.QuoteOptions{
				PaymentMethod: paymentMethod,
				PromoCode:     promoCode,
			}); err == nil && quote != nil && quote.Total != nil {
				fmt.Printf("quoted total: %d %s\n", quote.Total.Amount, quote.Total.Currency)
			}

			result, err := engine.Checkout(ctx, reservation.CheckoutOptions{
				PaymentMethod: paymentMethod,
				PromoCode:     promoCode,
			})
			if err != nil {
				return err
			}

			fmt.Printf("order %s: %s\n", result.OrderID, result.Status)
			if result.PaymentURL != "" {
				fmt.Printf("complete payment at: %s\n", result.PaymentURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceID, "service", "", "service ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "target day as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&at, "at", "", "slot start time as HH:MM (required)")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method identifier")
	cmd.Flags().StringVar(&promoCode, "promo-code", "", "promo code")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
