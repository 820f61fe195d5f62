package domain

// Customer represents a customer in the domain model.
// This is a pure domain model without wire-format concerns.
type Customer struct {
	ID      int64
	Name    string
	Company string
	Visible *bool
	Enabled *bool
}

// Selectable reports whether the customer may be offered for selection.
// Both flags are optional tri-state values; an absent flag means visible,
// and either one being explicitly false hides the customer.
func (c Customer) Selectable() bool {
	return flagVisible(c.Visible) && flagVisible(c.Enabled)
}

// String returns the customer name for display purposes.
func (c Customer) String() string {
	return c.Name
}

func flagVisible(flag *bool) bool {
	return flag == nil || *flag
}
