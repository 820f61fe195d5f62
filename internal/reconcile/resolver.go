package reconcile

import (
	"hirotrack/internal/domain"
	"hirotrack/internal/kimai"
)

// Resolver unifies the heterogeneous relationship encodings returned by the
// remote API into one consistent in-memory model. Resolution happens exactly
// once per entity load; consumers never see a by-id reference afterwards.
type Resolver struct{}

// NewResolver creates a new Resolver instance.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Customers maps wire customers to domain customers.
func (r *Resolver) Customers(wire []*kimai.Customer) []*domain.Customer {
	customers := make([]*domain.Customer, len(wire))
	for i, c := range wire {
		customers[i] = MapCustomer(c)
	}
	return customers
}

// Projects maps wire projects and resolves each customer reference against
// the loaded customer set. A reference that cannot be resolved is replaced
// with a placeholder customer so it is never empty for display purposes.
func (r *Resolver) Projects(wire []*kimai.Project, customers []*domain.Customer) []*domain.Project {
	byID := make(map[int64]*domain.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}

	projects := make([]*domain.Project, len(wire))
	for i, w := range wire {
		project := MapProject(w)
		project.Customer = resolveCustomer(project.Customer, byID)
		projects[i] = project
	}
	return projects
}

// Activities maps wire activities and resolves each project reference
// against the loaded project set. An absent reference stays unresolved,
// marking the activity as global.
func (r *Resolver) Activities(wire []*kimai.Activity, projects []*domain.Project) []*domain.Activity {
	byID := make(map[int64]*domain.Project, len(projects))
	for _, project := range projects {
		byID[project.ID] = project
	}

	activities := make([]*domain.Activity, len(wire))
	for i, w := range wire {
		activity := MapActivity(w)
		activity.Project = resolveProject(activity.Project, byID)
		activities[i] = activity
	}
	return activities
}

func resolveCustomer(ref domain.Reference[domain.Customer], byID map[int64]*domain.Customer) domain.Reference[domain.Customer] {
	if ref.IsResolved() {
		return ref
	}
	if id, ok := ref.ID(); ok {
		if customer, found := byID[id]; found {
			return domain.Resolved(customer)
		}
		return domain.Resolved(domain.PlaceholderCustomer(id))
	}
	// No reference at all: a project always belongs to some customer, so
	// substitute the zero-id placeholder.
	return domain.Resolved(domain.PlaceholderCustomer(0))
}

func resolveProject(ref domain.Reference[domain.Project], byID map[int64]*domain.Project) domain.Reference[domain.Project] {
	if ref.IsResolved() {
		// Prefer the fully resolved project from the loaded set over the
		// shallow embedded copy when both exist.
		if embedded, ok := ref.Entity(); ok {
			if project, found := byID[embedded.ID]; found {
				return domain.Resolved(project)
			}
		}
		return ref
	}
	if id, ok := ref.ID(); ok {
		if project, found := byID[id]; found {
			return domain.Resolved(project)
		}
		return domain.Resolved(domain.PlaceholderProject(id))
	}
	// Global activity.
	return ref
}
