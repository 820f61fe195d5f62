package domain

// Project represents a project in the domain model. After reconciliation the
// Customer reference is always resolved, falling back to a placeholder when
// the referenced customer is not part of the loaded customer set.
type Project struct {
	ID       int64
	Name     string
	Customer Reference[Customer]
	Visible  *bool
	Enabled  *bool
	Color    string
}

// Selectable reports whether the project may be offered for selection.
func (p Project) Selectable() bool {
	return flagVisible(p.Visible) && flagVisible(p.Enabled)
}

// CustomerName returns the resolved customer's name, or the placeholder name
// when the reference never resolved.
func (p Project) CustomerName() string {
	if customer, ok := p.Customer.Entity(); ok {
		return customer.Name
	}
	return UnknownCustomerName
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
