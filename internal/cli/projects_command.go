package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hirotrack/internal/reconcile"
)

// newProjectsCommand creates the projects listing command. Projects are
// shown grouped by customer, with reconciliation applied so broken customer
// links still produce a usable listing.
func (r *RootCommand) newProjectsCommand() *cobra.Command {
	errorHandler := NewErrorHandler()
	var customerID int64
	var search string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects grouped by customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.requestContext()
			defer cancel()

			client, err := r.manager.Client(ctx)
			if err != nil {
				return errorHandler.HandleSimple(err)
			}

			wireCustomers, err := client.ListCustomers(ctx)
			if err != nil {
				return errorHandler.Handle("list customers", err)
			}
			var filterID *int64
			if customerID > 0 {
				filterID = &customerID
			}
			wireProjects, err := client.ListProjects(ctx, filterID)
			if err != nil {
				return errorHandler.Handle("list projects", err)
			}

			resolver := reconcile.NewResolver()
			customers := resolver.Customers(wireCustomers)
			projects := resolver.Projects(wireProjects, customers)

			term := search
			if term == "" {
				term = r.prefs.DefaultSearch
			}
			groups := reconcile.GroupProjects(customers, projects, term)
			if len(groups) == 0 {
				fmt.Fprintln(r.out, "No projects found")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(r.out, "%s\n", group.Customer.Name)
				for _, project := range group.Projects {
					fmt.Fprintf(r.out, "  %6d  %s\n", project.ID, project.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&customerID, "customer", 0, "Only projects of this customer id")
	cmd.Flags().StringVar(&search, "search", "", "Filter by customer or project name")
	return cmd
}
