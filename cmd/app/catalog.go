package main

import (
	"fmt"

	"deliverydesk/cmd"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Load the reference data and print the selector options",
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := cmd.NewCompositionRoot(c.Context(), config, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			customers, products, err := app.ReferenceData().Load(c.Context())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "Customers (%d)\n", len(customers))
			for _, customer := range customers {
				fmt.Fprintf(out, "  %s\n", customer.Label())
			}
			fmt.Fprintf(out, "Products (%d)\n", len(products))
			for _, product := range products {
				fmt.Fprintf(out, "  %s\n", product.Label())
			}
			return nil
		},
	}
}
