package reconcile

import (
	"strings"

	"hirotrack/internal/domain"
)

// ProjectGroup is one entry of the customer → projects selection hierarchy.
type ProjectGroup struct {
	Customer *domain.Customer
	Projects []*domain.Project
}

// GroupProjects builds the selection hierarchy: each visible customer with
// its visible projects matching the search term, customers with no matching
// projects dropped. The search term matches case-insensitively against the
// customer name or the project name.
//
// When the grouping yields nothing but projects exist, a single group under
// the sentinel "All Projects" pseudo-customer is synthesized so the selector
// is never empty merely because customer-linkage metadata is missing.
func GroupProjects(customers []*domain.Customer, projects []*domain.Project, search string) []ProjectGroup {
	term := strings.ToLower(strings.TrimSpace(search))

	var groups []ProjectGroup
	for _, customer := range customers {
		if !customer.Selectable() {
			continue
		}
		customerMatches := term == "" || strings.Contains(strings.ToLower(customer.Name), term)

		var matched []*domain.Project
		for _, project := range projects {
			if !project.Selectable() {
				continue
			}
			resolved, ok := project.Customer.Entity()
			if !ok || resolved.ID != customer.ID {
				continue
			}
			if customerMatches || matchesTerm(project.Name, term) {
				matched = append(matched, project)
			}
		}
		if len(matched) > 0 {
			groups = append(groups, ProjectGroup{Customer: customer, Projects: matched})
		}
	}

	if len(groups) == 0 && len(projects) > 0 {
		var matched []*domain.Project
		for _, project := range projects {
			if project.Selectable() && (term == "" || matchesTerm(project.Name, term)) {
				matched = append(matched, project)
			}
		}
		if len(matched) > 0 {
			groups = append(groups, ProjectGroup{Customer: domain.AllProjectsCustomer(), Projects: matched})
		}
	}

	return groups
}

// ActivitiesForProject returns the activities eligible under the chosen
// project: visible, and either global or belonging to that project.
func ActivitiesForProject(activities []*domain.Activity, projectID int64) []*domain.Activity {
	var eligible []*domain.Activity
	for _, activity := range activities {
		if !activity.Selectable() {
			continue
		}
		if activity.IsGlobal() || belongsToProject(activity, projectID) {
			eligible = append(eligible, activity)
		}
	}
	return eligible
}

func belongsToProject(activity *domain.Activity, projectID int64) bool {
	if project, ok := activity.Project.Entity(); ok {
		return project.ID == projectID
	}
	if id, ok := activity.Project.ID(); ok {
		return id == projectID
	}
	return false
}

func matchesTerm(name, term string) bool {
	return term != "" && strings.Contains(strings.ToLower(name), term)
}
