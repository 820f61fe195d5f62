package kimai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// API defines the interface for all remote server operations.
type API interface {
	IsConfigured() bool
	ServerURL() string

	// Connectivity
	Ping(ctx context.Context) (string, error)
	GetVersion(ctx context.Context) (*Version, error)

	// Customer operations
	ListCustomers(ctx context.Context) ([]*Customer, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error)

	// Project operations
	ListProjects(ctx context.Context, customerID *int64) ([]*Project, error)
	GetProject(ctx context.Context, id int64) (*Project, error)
	CreateProject(ctx context.Context, project *Project) (*Project, error)

	// Activity operations
	ListActivities(ctx context.Context, projectID *int64) ([]*Activity, error)
	GetActivity(ctx context.Context, id int64) (*Activity, error)
	CreateActivity(ctx context.Context, activity *Activity) (*Activity, error)

	// Timesheet operations
	ListTimesheets(ctx context.Context, filter TimesheetFilter) ([]*Timesheet, error)
	GetTimesheet(ctx context.Context, id int64) (*Timesheet, error)
	CreateTimesheet(ctx context.Context, timesheet *Timesheet) (*Timesheet, error)
	UpdateTimesheet(ctx context.Context, id int64, patch TimesheetPatch) (*Timesheet, error)
	DeleteTimesheet(ctx context.Context, id int64) error
}

// Ping verifies connectivity and authentication against the server.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/ping", nil, nil, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// GetVersion returns the server version descriptor.
func (c *Client) GetVersion(ctx context.Context) (*Version, error) {
	version := &Version{}
	if err := c.do(ctx, http.MethodGet, "/version", nil, nil, version); err != nil {
		return nil, err
	}
	return version, nil
}

// ListCustomers returns all customers visible to the authenticated user.
func (c *Client) ListCustomers(ctx context.Context) ([]*Customer, error) {
	var customers []*Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer returns a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	customer := &Customer{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CreateCustomer creates a new customer on the server.
func (c *Client) CreateCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	created := &Customer{}
	if err := c.do(ctx, http.MethodPost, "/customers", nil, customer, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ListProjects returns projects, optionally filtered by parent customer id.
func (c *Client) ListProjects(ctx context.Context, customerID *int64) ([]*Project, error) {
	var projects []*Project
	if err := c.do(ctx, http.MethodGet, "/projects", parentFilter("customer", customerID), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	project := &Project{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, project); err != nil {
		return nil, err
	}
	return project, nil
}

// CreateProject creates a new project on the server.
func (c *Client) CreateProject(ctx context.Context, project *Project) (*Project, error) {
	created := &Project{}
	if err := c.do(ctx, http.MethodPost, "/projects", nil, project, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ListActivities returns activities, optionally filtered by parent project id.
func (c *Client) ListActivities(ctx context.Context, projectID *int64) ([]*Activity, error) {
	var activities []*Activity
	if err := c.do(ctx, http.MethodGet, "/activities", parentFilter("project", projectID), nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity returns a single activity by id.
func (c *Client) GetActivity(ctx context.Context, id int64) (*Activity, error) {
	activity := &Activity{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/activities/%d", id), nil, nil, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// CreateActivity creates a new activity on the server.
func (c *Client) CreateActivity(ctx context.Context, activity *Activity) (*Activity, error) {
	created := &Activity{}
	if err := c.do(ctx, http.MethodPost, "/activities", nil, activity, created); err != nil {
		return nil, err
	}
	return created, nil
}

// ListTimesheets returns timesheets matching the given filter.
func (c *Client) ListTimesheets(ctx context.Context, filter TimesheetFilter) ([]*Timesheet, error) {
	var timesheets []*Timesheet
	if err := c.do(ctx, http.MethodGet, "/timesheets", filter.Values(), nil, &timesheets); err != nil {
		return nil, err
	}
	return timesheets, nil
}

// GetTimesheet returns a single timesheet by id.
func (c *Client) GetTimesheet(ctx context.Context, id int64) (*Timesheet, error) {
	timesheet := &Timesheet{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/timesheets/%d", id), nil, nil, timesheet); err != nil {
		return nil, err
	}
	return timesheet, nil
}

// CreateTimesheet submits a completed time entry to the server.
func (c *Client) CreateTimesheet(ctx context.Context, timesheet *Timesheet) (*Timesheet, error) {
	created := &Timesheet{}
	if err := c.do(ctx, http.MethodPost, "/timesheets", nil, timesheet, created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTimesheet applies a partial update to an existing timesheet.
func (c *Client) UpdateTimesheet(ctx context.Context, id int64, patch TimesheetPatch) (*Timesheet, error) {
	updated := &Timesheet{}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/timesheets/%d", id), nil, patch, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTimesheet removes a timesheet from the server.
func (c *Client) DeleteTimesheet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/timesheets/%d", id), nil, nil, nil)
}

// parentFilter builds the optional parent-id query filter used by the
// project and activity listings.
func parentFilter(key string, id *int64) url.Values {
	if id == nil {
		return nil
	}
	values := url.Values{}
	values.Set(key, strconv.FormatInt(*id, 10))
	return values
}
