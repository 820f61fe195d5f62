package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hirotrack/internal/errors"
)

// newStatusCommand creates the status command: report the bootstrap state.
func (r *RootCommand) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the connection and authentication state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.requestContext()
			defer cancel()

			state := r.manager.Bootstrap(ctx)
			switch {
			case !state.Configured:
				fmt.Fprintln(r.out, "Not configured. Run 'hirotrack login <server-url> <api-token>' to get started.")
			case !state.Authenticated:
				fmt.Fprintf(r.out, "Configured for %s, but the server could not be verified.\n", state.ServerURL)
				if state.Err != nil {
					fmt.Fprintf(r.out, "  %s\n", errors.GetUserMessage(state.Err))
				}
				fmt.Fprintln(r.out, "Stored credentials were kept; retry once the server is reachable.")
			default:
				fmt.Fprintf(r.out, "Authenticated against %s", state.ServerURL)
				if state.Version != "" {
					fmt.Fprintf(r.out, " (Kimai %s)", state.Version)
				}
				fmt.Fprintln(r.out)
			}
			return nil
		},
	}
}
