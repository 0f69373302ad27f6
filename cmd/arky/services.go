package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xDjole/arky-go/catalog"
)

func newServicesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "services",
		Short: "List the business's bookable services",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(cmd)
			if err != nil {
				return err
			}

			list, err := catalog.NewClient(client).ListServices(cmd.Context(), catalog.ListInput{Limit: limit})
			if err != nil {
				return err
			}

			for _, svc := range list.Items {
				total := 0
				for _, p := range svc.Durations {
					total += p.Duration
				}
				fmt.Printf("%s  %-30s  %d min  methods: %s\n",
					svc.ID, svc.Name, total, strings.Join(svc.ReservationMethods, ","))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "max services to list")
	return cmd
}
