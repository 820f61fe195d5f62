package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLoginCommand creates the login command: save credentials and verify
// connectivity against the server.
func (r *RootCommand) newLoginCommand() *cobra.Command {
	errorHandler := NewErrorHandler()

	return &cobra.Command{
		Use:   "login <server-url> <api-token>",
		Short: "Save server credentials and verify the connection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverURL, apiToken := args[0], args[1]

			if err := r.manager.SaveCredentials(serverURL, apiToken); err != nil {
				return errorHandler.Handle("save credentials", err)
			}

			ctx, cancel := r.requestContext()
			defer cancel()

			state := r.manager.Bootstrap(ctx)
			if !state.Authenticated {
				// Credentials are saved so the user can retry once the
				// server is reachable; report the specific failure.
				if state.Err != nil {
					return errorHandler.Handle("connect to server", state.Err)
				}
				return fmt.Errorf("credentials saved, but the server could not be verified")
			}

			fmt.Fprintf(r.out, "Connected to %s", state.ServerURL)
			if state.Version != "" {
				fmt.Fprintf(r.out, " (Kimai %s)", state.Version)
			}
			fmt.Fprintln(r.out)
			return nil
		},
	}
}
