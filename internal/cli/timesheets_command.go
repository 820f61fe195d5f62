package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hirotrack/internal/kimai"
	"hirotrack/internal/timer"
)

// newTimesheetsCommand creates the timesheets listing command.
func (r *RootCommand) newTimesheetsCommand() *cobra.Command {
	errorHandler := NewErrorHandler()
	var begin, end string
	var projectID, activityID int64

	cmd := &cobra.Command{
		Use:   "timesheets",
		Short: "List recorded time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.requestContext()
			defer cancel()

			client, err := r.manager.Client(ctx)
			if err != nil {
				return errorHandler.HandleSimple(err)
			}

			filter := kimai.TimesheetFilter{}
			if begin != "" {
				t, err := kimai.ParseDateTime(begin)
				if err != nil {
					return errorHandler.HandleSimple(err)
				}
				filter.Begin = &t
			}
			if end != "" {
				t, err := kimai.ParseDateTime(end)
				if err != nil {
					return errorHandler.HandleSimple(err)
				}
				filter.End = &t
			}
			if projectID > 0 {
				filter.Project = &projectID
			}
			if activityID > 0 {
				filter.Activity = &activityID
			}
			if r.prefs.DefaultUser > 0 {
				user := r.prefs.DefaultUser
				filter.User = &user
			}

			timesheets, err := client.ListTimesheets(ctx, filter)
			if err != nil {
				return errorHandler.Handle("list timesheets", err)
			}
			if len(timesheets) == 0 {
				fmt.Fprintln(r.out, "No time entries found")
				return nil
			}
			for _, ts := range timesheets {
				duration := timer.FormatDuration(ts.Duration)
				if ts.Description != "" {
					fmt.Fprintf(r.out, "%6d  %s  %-8s  %s\n", ts.ID, ts.Begin, duration, ts.Description)
				} else {
					fmt.Fprintf(r.out, "%6d  %s  %-8s\n", ts.ID, ts.Begin, duration)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&begin, "begin", "", "Only entries at or after this time (YYYY-MM-DDTHH:mm:ss)")
	cmd.Flags().StringVar(&end, "end", "", "Only entries at or before this time (YYYY-MM-DDTHH:mm:ss)")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Only entries for this project id")
	cmd.Flags().Int64Var(&activityID, "activity", 0, "Only entries for this activity id")
	return cmd
}
