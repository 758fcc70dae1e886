package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"drover/internal/api"
	"drover/internal/constants"
	"drover/internal/domain"
	"drover/internal/filter"
)

// Client is an HTTP client for the remote browser-automation API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.DefaultRequestTimeout,
		},
	}
}

// CreateSession creates a new remote browser session
func (c *Client) CreateSession() (*api.CreateSessionResponse, error) {
	var resp api.CreateSessionResponse
	if err := c.post("/sessions/create-session", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopSession stops a remote browser session
func (c *Client) StopSession(sessionID string) error {
	var resp api.SuccessResponse
	return c.post("/sessions/stop-session/"+url.PathEscape(sessionID), nil, &resp)
}

// RunningSessions lists the sessions currently running on the service
func (c *Client) RunningSessions() (*api.SessionListResponse, error) {
	var resp api.SessionListResponse
	if err := c.get("/sessions/running-sessions", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SessionDetails fetches the details of a single session
func (c *Client) SessionDetails(sessionID string) (*api.SessionDetailResponse, error) {
	var resp api.SessionDetailResponse
	if err := c.get("/sessions/session/"+url.PathEscape(sessionID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Navigate points the remote browser at a URL
func (c *Client) Navigate(sessionID string, req api.NavigateRequest) (*api.SuccessResponse, error) {
	var resp api.SuccessResponse
	if err := c.post("/browser/navigate/"+url.PathEscape(sessionID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Act performs a natural-language action in the remote browser
func (c *Client) Act(sessionID string, req api.ActRequest) (*api.ActionResponse, error) {
	var resp api.ActionResponse
	if err := c.post("/browser/act/"+url.PathEscape(sessionID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Extract pulls structured data from the current page
func (c *Client) Extract(sessionID string, req api.ExtractRequest) (*api.ExtractResponse, error) {
	var resp api.ExtractResponse
	if err := c.post("/browser/extract/"+url.PathEscape(sessionID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Observe asks the service to describe the current page
func (c *Client) Observe(sessionID string, req api.ObserveRequest) (*api.ObserveResponse, error) {
	var resp api.ObserveResponse
	if err := c.post("/browser/observe/"+url.PathEscape(sessionID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Screenshot returns the current page rendered as PNG bytes
func (c *Client) Screenshot(sessionID string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.baseURL+"/browser/screenshot/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading screenshot: %w", err)
	}
	return data, nil
}

// DOMState fetches the raw HTML state of the current page
func (c *Client) DOMState(sessionID string) (*api.DOMStateResponse, error) {
	var resp api.DOMStateResponse
	if err := c.get("/browser/dom-state/"+url.PathEscape(sessionID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ConsoleLogs fetches console telemetry filtered by a resolved query.
// A fetch failure is an error; an empty result is a successful response
// with an empty Logs slice — callers can tell the two apart.
func (c *Client) ConsoleLogs(sessionID string, query filter.ConsoleQuery) (*api.ConsoleLogsResponse, error) {
	path := "/browser/console-logs/" + url.PathEscape(sessionID) + "?" + query.WireQuery().Encode()

	var resp api.ConsoleLogsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NetworkLogs fetches network telemetry filtered by a resolved query
func (c *Client) NetworkLogs(sessionID string, query filter.NetworkQuery) (*api.NetworkLogsResponse, error) {
	path := "/browser/network-logs/" + url.PathEscape(sessionID) + "?" + query.WireQuery().Encode()

	var resp api.NetworkLogsResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearLogs clears the captured telemetry for a session
func (c *Client) ClearLogs(sessionID string) error {
	var resp api.SuccessResponse
	return c.post("/browser/clear-logs/"+url.PathEscape(sessionID), nil, &resp)
}

func (c *Client) get(path string, v interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpectedResponseBody, err)
	}
	return nil
}

func (c *Client) post(path string, body interface{}, v interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnexpectedResponseBody, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var errResp api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		if errResp.Code == domain.ErrCodeSessionNotFound {
			return fmt.Errorf("%s: %w", errResp.Code, domain.ErrSessionNotFound)
		}
		if errResp.Code != "" {
			return fmt.Errorf("%s: %s", errResp.Code, errResp.Error)
		}
		return fmt.Errorf("%s", errResp.Error)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
