package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// builds the markdown shown for a snapshot
func IssuesMarkdown(snapshot Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Issues (%d)\n\n", len(snapshot.Issues))

	if len(snapshot.Issues) == 0 {
		b.WriteString("_No issues._\n")
		return b.String()
	}

	for i, issue := range snapshot.Issues {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, string(issue))
	}

	return b.String()
}

// creates a glamour renderer for the given style ("dark", "notty", ...)
func NewRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}

	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}

// renders a snapshot as plain text for non-interactive output
func RenderPlain(snapshot Snapshot, width int) (string, error) {
	renderer, err := NewRenderer("notty", width)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	body, err := renderer.Render(IssuesMarkdown(snapshot))
	if err != nil {
		return "", fmt.Errorf("failed to render issues: %w", err)
	}

	return fmt.Sprintf("health: %s\n%s", snapshot.Status, body), nil
}
