package tui

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/glamour"
)

// main TUI application model
type Model struct {
	client   *APIClient
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
	loading  bool
	snapshot *Snapshot
	err      error
}

// Snapshot is one read of both endpoints.
type Snapshot struct {
	Status    string
	Issues    []json.RawMessage
	FetchedAt time.Time
}

// sent when a refresh completes
type SnapshotMsg struct {
	snapshot Snapshot
}

// sent when a refresh fails
type ErrorMsg struct {
	err error
}

// REST API response types

type healthResponse struct {
	Status string `json:"status"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
