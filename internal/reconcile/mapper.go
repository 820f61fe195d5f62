package reconcile

import (
	"bytes"
	"encoding/json"

	"hirotrack/internal/domain"
	"hirotrack/internal/kimai"
)

// MapCustomer converts a wire customer to the domain model.
func MapCustomer(wire *kimai.Customer) *domain.Customer {
	return &domain.Customer{
		ID:      wire.ID,
		Name:    wire.Name,
		Company: wire.Company,
		Visible: wire.Visible,
		Enabled: wire.Enabled,
	}
}

// MapProject converts a wire project to the domain model. The customer
// reference is decoded but not yet resolved against a customer set; that is
// the resolver's job.
func MapProject(wire *kimai.Project) *domain.Project {
	return &domain.Project{
		ID:       wire.ID,
		Name:     wire.Name,
		Customer: customerReference(wire),
		Visible:  wire.Visible,
		Enabled:  wire.Enabled,
		Color:    wire.Color,
	}
}

// MapActivity converts a wire activity to the domain model. An absent
// project reference stays unresolved, marking the activity as global.
func MapActivity(wire *kimai.Activity) *domain.Activity {
	return &domain.Activity{
		ID:      wire.ID,
		Name:    wire.Name,
		Project: projectReference(wire),
		Visible: wire.Visible,
		Enabled: wire.Enabled,
		Color:   wire.Color,
	}
}

// customerReference decodes the three wire encodings of a project's customer
// field: embedded object, bare numeric id, or an id in the alternate field.
func customerReference(wire *kimai.Project) domain.Reference[domain.Customer] {
	if raw := rawValue(wire.Customer); raw != nil {
		var id int64
		if err := json.Unmarshal(raw, &id); err == nil {
			return domain.ByID[domain.Customer](id)
		}
		var embedded kimai.Customer
		if err := json.Unmarshal(raw, &embedded); err == nil {
			return domain.Resolved(MapCustomer(&embedded))
		}
	}
	if wire.CustomerID != nil {
		return domain.ByID[domain.Customer](*wire.CustomerID)
	}
	return domain.Unresolved[domain.Customer]()
}

// projectReference decodes an activity's project field the same way.
func projectReference(wire *kimai.Activity) domain.Reference[domain.Project] {
	if raw := rawValue(wire.Project); raw != nil {
		var id int64
		if err := json.Unmarshal(raw, &id); err == nil {
			return domain.ByID[domain.Project](id)
		}
		var embedded kimai.Project
		if err := json.Unmarshal(raw, &embedded); err == nil {
			return domain.Resolved(MapProject(&embedded))
		}
	}
	if wire.ProjectID != nil {
		return domain.ByID[domain.Project](*wire.ProjectID)
	}
	return domain.Unresolved[domain.Project]()
}

// rawValue returns the raw JSON unless it is absent or an explicit null.
func rawValue(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
