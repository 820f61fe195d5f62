package domain

// Credentials is the (server URL, API token) pair needed to talk to the
// remote server. Owned by the credential store; anything else only ever
// holds a transient copy.
type Credentials struct {
	ServerURL string
	APIToken  string
}

// IsComplete returns true if both fields are non-empty.
func (c Credentials) IsComplete() bool {
	return c.ServerURL != "" && c.APIToken != ""
}
