package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hirotrack/internal/reconcile"
)

// newCustomersCommand creates the customers listing command.
func (r *RootCommand) newCustomersCommand() *cobra.Command {
	errorHandler := NewErrorHandler()

	return &cobra.Command{
		Use:   "customers",
		Short: "List customers visible to the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.requestContext()
			defer cancel()

			client, err := r.manager.Client(ctx)
			if err != nil {
				return errorHandler.HandleSimple(err)
			}

			wire, err := client.ListCustomers(ctx)
			if err != nil {
				return errorHandler.Handle("list customers", err)
			}

			resolver := reconcile.NewResolver()
			for _, customer := range resolver.Customers(wire) {
				if !customer.Selectable() {
					continue
				}
				if customer.Company != "" {
					fmt.Fprintf(r.out, "%6d  %s (%s)\n", customer.ID, customer.Name, customer.Company)
				} else {
					fmt.Fprintf(r.out, "%6d  %s\n", customer.ID, customer.Name)
				}
			}
			return nil
		},
	}
}
