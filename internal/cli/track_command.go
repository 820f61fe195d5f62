package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/kimai"
	"hirotrack/internal/notify"
	"hirotrack/internal/reconcile"
	"hirotrack/internal/timer"
)

// newTrackCommand creates the track command: run a foreground timer for a
// project/activity pair, stop on interrupt, and submit the completed entry.
func (r *RootCommand) newTrackCommand() *cobra.Command {
	errorHandler := NewErrorHandler()
	var projectID, activityID int64
	var description string

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Run a timer and submit the entry when stopped",
		Long: `Run a timer for the given project and activity in the foreground.

The timer keeps local, authoritative time. Press Ctrl+C to stop: the entry
is finalized locally first and then submitted to the server. A submission
failure is reported, but never reopens the stopped timer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := r.resolveSelection(projectID, activityID, description)
			if err != nil {
				return errorHandler.HandleSimple(err)
			}

			engine := timer.NewEngine(r.notifier())
			defer engine.Close()
			engine.SetTickInterval(r.tickInterval())

			if err := engine.Start(*selection); err != nil {
				return errorHandler.HandleSimple(err)
			}

			waitCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			r.reportElapsed(waitCtx, engine)

			entry := engine.Stop()
			if entry == nil {
				return nil
			}
			return r.submitEntry(entry, errorHandler)
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project id to track against")
	cmd.Flags().Int64Var(&activityID, "activity", 0, "Activity id to track against")
	cmd.Flags().StringVar(&description, "description", "", "Entry description")
	return cmd
}

// notifier returns the engine's notification sink, honoring the preference
// to suppress notifications.
func (r *RootCommand) notifier() notify.Notifier {
	if !r.prefs.Notifications {
		return notify.NopNotifier{}
	}
	return notify.NewConsoleNotifier(r.out)
}

// tickInterval resolves the tick period: preferences override the
// environment-configured interval.
func (r *RootCommand) tickInterval() time.Duration {
	if r.prefs.TickIntervalSeconds > 0 {
		return time.Duration(r.prefs.TickIntervalSeconds) * time.Second
	}
	return r.config.Timer.TickInterval
}

// resolveSelection loads and reconciles the chosen project and activity.
// Selection errors direct the user to pick entities rather than starting
// with placeholders.
func (r *RootCommand) resolveSelection(projectID, activityID int64, description string) (*timer.Selection, error) {
	if projectID <= 0 {
		return nil, errors.NewMissingSelectionError("a project")
	}
	if activityID <= 0 {
		return nil, errors.NewMissingSelectionError("an activity")
	}

	ctx, cancel := r.requestContext()
	defer cancel()

	client, err := r.manager.Client(ctx)
	if err != nil {
		return nil, err
	}

	wireProject, err := client.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	wireActivity, err := client.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	// Customer names feed the status label; a listing failure here only
	// degrades the label, so it is not fatal.
	wireCustomers, err := client.ListCustomers(ctx)
	if err != nil {
		wireCustomers = nil
	}

	resolver := reconcile.NewResolver()
	customers := resolver.Customers(wireCustomers)
	projects := resolver.Projects([]*kimai.Project{wireProject}, customers)
	activities := resolver.Activities([]*kimai.Activity{wireActivity}, projects)

	eligible := reconcile.ActivitiesForProject(activities, projectID)
	if len(eligible) == 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("activity %d is not available under project %d", activityID, projectID), nil)
	}

	return &timer.Selection{
		Project:     projects[0],
		Activity:    eligible[0],
		Description: description,
	}, nil
}

// reportElapsed prints the running elapsed time until the context is
// cancelled by an interrupt.
func (r *RootCommand) reportElapsed(ctx context.Context, engine *timer.Engine) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return
		case <-ticker.C:
			fmt.Fprintf(r.out, "\rElapsed: %s ", timer.FormatDuration(engine.Elapsed()))
		}
	}
}

// submitEntry forwards the finalized entry to the server. The local stop is
// already final; a delivery failure is surfaced without any rollback.
func (r *RootCommand) submitEntry(entry *domain.TimeEntry, errorHandler *ErrorHandler) error {
	ctx, cancel := r.requestContext()
	defer cancel()

	if r.prefs.DefaultUser > 0 && entry.User == nil {
		user := r.prefs.DefaultUser
		entry.User = &user
	}

	created, err := r.manager.Submit(ctx, entry)
	if err != nil {
		fmt.Fprintf(r.out, "Entry recorded locally: %s on %s / %s\n",
			timer.FormatDuration(entry.Duration), entry.Project.Name, entry.Activity.Name)
		return errorHandler.Handle("submit time entry", err)
	}
	fmt.Fprintf(r.out, "Submitted entry %d: %s on %s / %s\n",
		created.ID, timer.FormatDuration(entry.Duration), entry.Project.Name, entry.Activity.Name)
	return nil
}
