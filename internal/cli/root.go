package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hirotrack/internal/config"
	"hirotrack/internal/logging"
	"hirotrack/internal/session"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	manager *session.Manager
	config  *config.Config
	prefs   config.Prefs
	out     io.Writer
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(manager *session.Manager, cfg *config.Config, prefs config.Prefs) *RootCommand {
	root := &RootCommand{
		manager: manager,
		config:  cfg,
		prefs:   prefs,
		out:     os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "hirotrack",
		Short: "A client for Kimai-compatible time-tracking servers",
		Long: `HiroTrack is a client for Kimai-compatible time-tracking servers.

It authenticates against a server, browses the customer/project/activity
hierarchy, runs a local start/stop timer, and submits completed time
entries.

EXAMPLES:
  hirotrack login https://kimai.example.com <api-token>
  hirotrack status
  hirotrack projects --search acme
  hirotrack activities --project 12
  hirotrack track --project 12 --activity 3 --description "Sprint work"
  hirotrack timesheets
  hirotrack logout

CONFIGURATION:
  HIROTRACK_DATA_DIR                Data directory (default: ~/.hirotrack)
  HIROTRACK_CREDENTIALS_FILENAME    Fallback credential store filename
  HIROTRACK_TICK_INTERVAL           Timer tick interval (default: 1s)
  HIROTRACK_APP_TIMEOUT             Request context timeout (default: 60s)
  HIROTRACK_DEBUG                   Enable debug logging when set

  Preferences live in ~/.config/hirotrack/prefs.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	verbose := root.cmd.PersistentFlags().Bool("verbose", cfg.Application.Verbose, "Enable debug logging")
	root.cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *verbose {
			logging.SetDebug(true)
		}
	}

	root.addSubcommands()
	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetOutput redirects command output, used by tests
func (r *RootCommand) SetOutput(out io.Writer) {
	r.out = out
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(r.newLoginCommand())
	r.cmd.AddCommand(r.newLogoutCommand())
	r.cmd.AddCommand(r.newStatusCommand())
	r.cmd.AddCommand(r.newCustomersCommand())
	r.cmd.AddCommand(r.newProjectsCommand())
	r.cmd.AddCommand(r.newActivitiesCommand())
	r.cmd.AddCommand(r.newTimesheetsCommand())
	r.cmd.AddCommand(r.newTrackCommand())
}

// requestContext returns a context bounded by the configured application
// timeout.
func (r *RootCommand) requestContext() (context.Context, context.CancelFunc) {
	timeout := r.config.Application.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
