package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(client *APIClient) *Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(infoStyle),
	)

	return &Model{
		client:  client,
		spinner: s,
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.client.SnapshotCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.client.SnapshotCmd())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// renderer depends on width, rebuild lazily
		m.renderer = nil

	case SnapshotMsg:
		m.loading = false
		m.err = nil
		snapshot := msg.snapshot
		m.snapshot = &snapshot
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("issue tracker"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.client.Endpoint()))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + infoStyle.Render("loading..."))

	case m.err != nil:
		b.WriteString(errorView(m.err))

	case m.snapshot != nil:
		b.WriteString(m.snapshotView(*m.snapshot))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r: refresh  q: quit"))

	return b.String()
}

func (m *Model) snapshotView(snapshot Snapshot) string {
	var b strings.Builder

	statusStyle := statusOKStyle
	if snapshot.Status != "ok" {
		statusStyle = statusBadStyle
	}
	b.WriteString("health: " + statusStyle.Render(snapshot.Status))
	b.WriteString("\n")

	markdown := IssuesMarkdown(snapshot)
	if m.renderer == nil {
		renderer, err := NewRenderer("dark", m.width)
		if err == nil {
			m.renderer = renderer
		}
	}

	if m.renderer != nil {
		if out, err := m.renderer.Render(markdown); err == nil {
			markdown = out
		}
	}

	b.WriteString(markdown)
	b.WriteString(infoStyle.Render("updated " + snapshot.FetchedAt.Format("15:04:05")))
	b.WriteString("\n")

	return b.String()
}

func errorView(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n"
}
