package domain

// Placeholder names and styling used when a reference cannot be resolved
// against the loaded entity sets. References are never left empty for
// display purposes.
const (
	UnknownCustomerName = "Unknown Customer"
	UnknownProjectName  = "Unknown Project"
	PlaceholderColor    = "#6b7280"

	// AllProjectsID is the sentinel pseudo-customer used when no
	// customer/project link could be established at all.
	AllProjectsID   = -1
	AllProjectsName = "All Projects"
)

// PlaceholderCustomer builds a stand-in customer for an id that is not part
// of the loaded customer set. A zero rawID is used when no id was present.
func PlaceholderCustomer(rawID int64) *Customer {
	return &Customer{
		ID:   rawID,
		Name: UnknownCustomerName,
	}
}

// PlaceholderProject builds a stand-in project for an id that is not part
// of the loaded project set.
func PlaceholderProject(rawID int64) *Project {
	return &Project{
		ID:    rawID,
		Name:  UnknownProjectName,
		Color: PlaceholderColor,
	}
}

// AllProjectsCustomer builds the sentinel pseudo-customer grouping every
// project when customer-linkage metadata is missing or malformed.
func AllProjectsCustomer() *Customer {
	return &Customer{
		ID:   AllProjectsID,
		Name: AllProjectsName,
	}
}
