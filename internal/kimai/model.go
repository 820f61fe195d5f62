package kimai

import (
	"encoding/json"
)

// Customer is the wire shape of a customer as returned by the server.
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Visible *bool  `json:"visible,omitempty"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// Project is the wire shape of a project. The customer relationship arrives
// in one of three encodings: an embedded object in Customer, a bare numeric
// id in Customer, or a numeric id in the alternate CustomerID field. The
// reconciler normalizes all three.
type Project struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Customer   json.RawMessage `json:"customer,omitempty"`
	CustomerID *int64          `json:"customerId,omitempty"`
	Visible    *bool           `json:"visible,omitempty"`
	Enabled    *bool           `json:"enabled,omitempty"`
	Color      string          `json:"color,omitempty"`
}

// Activity is the wire shape of an activity. A missing project relationship
// means the activity is global and valid under any project.
type Activity struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Project   json.RawMessage `json:"project,omitempty"`
	ProjectID *int64          `json:"projectId,omitempty"`
	Visible   *bool           `json:"visible,omitempty"`
	Enabled   *bool           `json:"enabled,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Timesheet is the API wire shape of a time entry: project and activity are
// bare ids, and begin/end are local-time strings without a timezone suffix.
type Timesheet struct {
	ID          int64    `json:"id,omitempty"`
	Begin       string   `json:"begin"`
	End         string   `json:"end,omitempty"`
	Project     int64    `json:"project"`
	Activity    int64    `json:"activity"`
	Description string   `json:"description,omitempty"`
	Duration    int64    `json:"duration,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	User        *int64   `json:"user,omitempty"`
	Exported    *bool    `json:"exported,omitempty"`
}

// TimesheetPatch carries the subset of timesheet fields that may be updated
// in place. Nil fields are left untouched by the server.
type TimesheetPatch struct {
	Begin       *string `json:"begin,omitempty"`
	End         *string `json:"end,omitempty"`
	Project     *int64  `json:"project,omitempty"`
	Activity    *int64  `json:"activity,omitempty"`
	Description *string `json:"description,omitempty"`
	Exported    *bool   `json:"exported,omitempty"`
}

// Version is the server version descriptor returned by the version endpoint.
type Version struct {
	Version   string `json:"version"`
	VersionID int64  `json:"versionId,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}
