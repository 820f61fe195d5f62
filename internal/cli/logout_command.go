package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLogoutCommand creates the logout command: clear stored credentials.
func (r *RootCommand) newLogoutCommand() *cobra.Command {
	errorHandler := NewErrorHandler()

	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored server credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.manager.ClearCredentials(); err != nil {
				return errorHandler.Handle("clear credentials", err)
			}
			fmt.Fprintln(r.out, "Credentials cleared")
			return nil
		},
	}
}
