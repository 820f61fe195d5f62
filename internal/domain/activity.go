package domain

// Activity represents an activity in the domain model. An activity with an
// unresolved Project reference is global and valid under any project.
type Activity struct {
	ID      int64
	Name    string
	Project Reference[Project]
	Visible *bool
	Enabled *bool
	Color   string
}

// Selectable reports whether the activity may be offered for selection.
func (a Activity) Selectable() bool {
	return flagVisible(a.Visible) && flagVisible(a.Enabled)
}

// IsGlobal returns true if the activity has no project reference and is
// therefore usable under any project.
func (a Activity) IsGlobal() bool {
	return a.Project.IsUnresolved()
}

// String returns the activity name for display purposes.
func (a Activity) String() string {
	return a.Name
}
