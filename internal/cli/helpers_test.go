package cli

import (
	"bytes"
	"context"
	"testing"

	"hirotrack/internal/config"
	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/kimai"
	"hirotrack/internal/session"
)

// fakeStore is an in-memory credentials.Store for command tests.
type fakeStore struct {
	creds *domain.Credentials
}

func (s *fakeStore) Load() (*domain.Credentials, error) { return s.creds, nil }

func (s *fakeStore) Save(serverURL, apiToken string) error {
	s.creds = &domain.Credentials{ServerURL: serverURL, APIToken: apiToken}
	return nil
}

func (s *fakeStore) Clear() error {
	s.creds = nil
	return nil
}

// fakeAPI implements kimai.API returning canned data.
type fakeAPI struct {
	serverURL  string
	pingErr    error
	version    *kimai.Version
	customers  []*kimai.Customer
	projects   []*kimai.Project
	activities []*kimai.Activity
	timesheets []*kimai.Timesheet

	listErr error

	lastProjectFilter  *int64
	lastTimesheetQuery kimai.TimesheetFilter
	created            *kimai.Timesheet
	createErr          error
}

func (f *fakeAPI) IsConfigured() bool { return true }
func (f *fakeAPI) ServerURL() string  { return f.serverURL }

func (f *fakeAPI) Ping(ctx context.Context) (string, error) {
	if f.pingErr != nil {
		return "", f.pingErr
	}
	return "pong", nil
}

func (f *fakeAPI) GetVersion(ctx context.Context) (*kimai.Version, error) {
	if f.version != nil {
		return f.version, nil
	}
	return &kimai.Version{Version: "2.16.0"}, nil
}

func (f *fakeAPI) ListCustomers(ctx context.Context) ([]*kimai.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.customers, nil
}

func (f *fakeAPI) GetCustomer(ctx context.Context, id int64) (*kimai.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, kimaiNotFound()
}

func (f *fakeAPI) CreateCustomer(ctx context.Context, c *kimai.Customer) (*kimai.Customer, error) {
	return c, nil
}

func (f *fakeAPI) ListProjects(ctx context.Context, customerID *int64) ([]*kimai.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastProjectFilter = customerID
	return f.projects, nil
}

func (f *fakeAPI) GetProject(ctx context.Context, id int64) (*kimai.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, kimaiNotFound()
}

func (f *fakeAPI) CreateProject(ctx context.Context, p *kimai.Project) (*kimai.Project, error) {
	return p, nil
}

func (f *fakeAPI) ListActivities(ctx context.Context, projectID *int64) ([]*kimai.Activity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.activities, nil
}

func (f *fakeAPI) GetActivity(ctx context.Context, id int64) (*kimai.Activity, error) {
	for _, a := range f.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, kimaiNotFound()
}

func (f *fakeAPI) CreateActivity(ctx context.Context, a *kimai.Activity) (*kimai.Activity, error) {
	return a, nil
}

func (f *fakeAPI) ListTimesheets(ctx context.Context, filter kimai.TimesheetFilter) ([]*kimai.Timesheet, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastTimesheetQuery = filter
	return f.timesheets, nil
}

func (f *fakeAPI) GetTimesheet(ctx context.Context, id int64) (*kimai.Timesheet, error) {
	return nil, kimaiNotFound()
}

func (f *fakeAPI) CreateTimesheet(ctx context.Context, t *kimai.Timesheet) (*kimai.Timesheet, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = t
	return t, nil
}

func (f *fakeAPI) UpdateTimesheet(ctx context.Context, id int64, patch kimai.TimesheetPatch) (*kimai.Timesheet, error) {
	return nil, kimaiNotFound()
}

func (f *fakeAPI) DeleteTimesheet(ctx context.Context, id int64) error { return nil }

func kimaiNotFound() error {
	return errors.NewAPIError(404, "Not found")
}

// testRoot bundles a root command wired to fakes with its captured output.
type testRoot struct {
	root   *RootCommand
	store  *fakeStore
	api    *fakeAPI
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestRoot(t *testing.T, store *fakeStore, api *fakeAPI, prefs config.Prefs) *testRoot {
	t.Helper()

	manager := session.NewManagerWithFactory(store, func(serverURL, apiToken string) kimai.API {
		if api.serverURL == "" {
			api.serverURL = serverURL
		}
		return api
	})

	cfg := config.NewConfig()
	root := NewRootCommand(manager, cfg, prefs)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOutput(out)
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	return &testRoot{root: root, store: store, api: api, out: out, errOut: errOut}
}

func (tr *testRoot) execute(args ...string) error {
	tr.root.cmd.SetArgs(args)
	return tr.root.Execute()
}

func configuredStore() *fakeStore {
	return &fakeStore{creds: &domain.Credentials{
		ServerURL: "https://kimai.example.com",
		APIToken:  "token-123",
	}}
}
