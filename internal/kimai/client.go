package kimai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hirotrack/internal/errors"
	"hirotrack/internal/logging"
)

const defaultRequestTimeout = 30 * time.Second

// Client is a stateless-per-instance HTTP wrapper around the remote server's
// REST API. It holds a transient copy of the credentials; the credential
// store remains their owner.
type Client struct {
	serverURL string
	apiToken  string
	http      *http.Client
}

// NewClient creates a new API client for the given server URL and token.
func NewClient(serverURL, apiToken string) *Client {
	return &Client{
		serverURL: strings.TrimSuffix(serverURL, "/"),
		apiToken:  apiToken,
		http:      &http.Client{Timeout: defaultRequestTimeout},
	}
}

// ServerURL returns the server URL this client talks to.
func (c *Client) ServerURL() string {
	return c.serverURL
}

// IsConfigured returns true if both the server URL and the API token are set.
// Every entity operation requires a configured client.
func (c *Client) IsConfigured() bool {
	return c.serverURL != "" && c.apiToken != ""
}

// baseURL returns the server URL with a single /api segment appended,
// unless the configured URL already ends in /api.
func (c *Client) baseURL() string {
	if strings.HasSuffix(c.serverURL, "/api") {
		return c.serverURL
	}
	return c.serverURL + "/api"
}

// do builds an authenticated request, executes it, and decodes the response
// into out. A nil out discards the response body. A *string out receives the
// raw body text when the server answers with a non-JSON content type.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	if !c.IsConfigured() {
		return errors.NewNotConfiguredError(method + " " + path)
	}

	requestURL := c.baseURL() + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewValidationError("encode request body", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, payload)
	if err != nil {
		return errors.NewValidationError("build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logging.Debugf("kimai: %s %s\n", method, requestURL)

	resp, err := c.http.Do(req)
	if err != nil {
		// No response was received at all: DNS, connect, or TLS failure.
		return errors.NewConnectionError(c.serverURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewConnectionError(c.serverURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.responseError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.WrapError(err, errors.ErrorTypeAPI, "decode response body")
		}
		return nil
	}
	if text, ok := out.(*string); ok {
		*text = string(data)
		return nil
	}
	return errors.NewAPIError(resp.StatusCode, "unexpected non-JSON response")
}

// responseError maps a non-2xx response to a typed error. The body is
// expected to be JSON with a message field, but plain-text and empty bodies
// are handled too.
func (c *Client) responseError(statusCode int, data []byte) error {
	if statusCode == http.StatusUnauthorized {
		return errors.NewUnauthorizedError()
	}

	message := strings.TrimSpace(string(data))
	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	} else {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
			message = body.Message
		}
	}
	return errors.NewAPIError(statusCode, message)
}
