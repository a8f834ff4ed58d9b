package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for API requests
const apiRequestTimeout = 10 * time.Second

// manages HTTP requests to the issue tracker REST API
type APIClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a client for ISSUETRACKER_API_ENDPOINT, defaulting to localhost
func NewAPIClientFromEnv() *APIClient {
	endpoint := os.Getenv("ISSUETRACKER_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return NewAPIClient(endpoint, nil)
}

// creates a client for endpoint. a nil httpClient gets a default with a timeout.
func NewAPIClient(endpoint string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: apiRequestTimeout}
	}

	return &APIClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
	}
}

func (c *APIClient) Endpoint() string {
	return c.endpoint
}

// reads the health status
func (c *APIClient) Health(ctx context.Context) (string, error) {
	var resp healthResponse
	if err := c.get(ctx, "/health", &resp); err != nil {
		return "", err
	}

	return resp.Status, nil
}

// reads the issue collection
func (c *APIClient) ListIssues(ctx context.Context) ([]json.RawMessage, error) {
	issues := []json.RawMessage{}
	if err := c.get(ctx, "/api/v1/issues", &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

// reads both endpoints
func (c *APIClient) Snapshot(ctx context.Context) (*Snapshot, error) {
	status, err := c.Health(ctx)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}

	issues, err := c.ListIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing issues failed: %w", err)
	}

	return &Snapshot{
		Status:    status,
		Issues:    issues,
		FetchedAt: time.Now(),
	}, nil
}

// returns a tea.Cmd that fetches a snapshot
func (c *APIClient) SnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiRequestTimeout)
		defer cancel()

		snapshot, err := c.Snapshot(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return SnapshotMsg{snapshot: *snapshot}
	}
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
