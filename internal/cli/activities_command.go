package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hirotrack/internal/reconcile"
)

// newActivitiesCommand creates the activities listing command. With
// --project set, only activities eligible under that project are shown:
// its own plus global ones.
func (r *RootCommand) newActivitiesCommand() *cobra.Command {
	errorHandler := NewErrorHandler()
	var projectID int64

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List activities, optionally for one project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.requestContext()
			defer cancel()

			client, err := r.manager.Client(ctx)
			if err != nil {
				return errorHandler.HandleSimple(err)
			}

			wireProjects, err := client.ListProjects(ctx, nil)
			if err != nil {
				return errorHandler.Handle("list projects", err)
			}
			wireActivities, err := client.ListActivities(ctx, nil)
			if err != nil {
				return errorHandler.Handle("list activities", err)
			}

			resolver := reconcile.NewResolver()
			projects := resolver.Projects(wireProjects, nil)
			activities := resolver.Activities(wireActivities, projects)

			if projectID > 0 {
				activities = reconcile.ActivitiesForProject(activities, projectID)
			}
			for _, activity := range activities {
				if !activity.Selectable() {
					continue
				}
				if activity.IsGlobal() {
					fmt.Fprintf(r.out, "%6d  %s (global)\n", activity.ID, activity.Name)
				} else if project, ok := activity.Project.Entity(); ok {
					fmt.Fprintf(r.out, "%6d  %s (%s)\n", activity.ID, activity.Name, project.Name)
				} else {
					fmt.Fprintf(r.out, "%6d  %s\n", activity.ID, activity.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Only activities eligible under this project id")
	return cmd
}
