package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/0xDjole/arky-go/arky"
	"github.com/0xDjole/arky-go/reservation"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "arky",
		Short:         "Explore availability and book reservations on an Arky business",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is fine; plain environment variables work too.
			_ = godotenv.Load()
		},
	}

	root.PersistentFlags().String("timezone", "", "IANA timezone for calendar math (default: $ARKY_TIMEZONE, then UTC)")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	root.AddCommand(newServicesCmd())
	root.AddCommand(newAvailabilityCmd())
	root.AddCommand(newSlotsCmd())
	root.AddCommand(newBookCmd())

	return root
}

// newClient assembles the SDK client from the environment plus shared
// flags.
func newClient(cmd *cobra.Command) (*arky.Client, *slog.Logger, error) {
	cfg, err := arky.ConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}

	logger := arky.NewLogger("arky-cli")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logger = logger
	}

	client, err := arky.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

func newEngine(cmd *cobra.Command, client *arky.Client, logger *slog.Logger) *reservation.Engine {
	tz, _ := cmd.Flags().GetString("timezone")
	if tz == "" {
		tz = os.Getenv("ARKY_TIMEZONE")
	}
	return reservation.NewEngine(reservation.NewClient(client), reservation.Options{
		Timezone: tz,
		Logger:   logger,
	})
}
