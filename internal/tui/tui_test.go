package tui

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *Model {
	return NewApp(NewAPIClient("http://localhost:8080", nil))
}

func TestModel_StartsLoading(t *testing.T) {
	m := newTestModel()

	assert.True(t, m.loading)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "loading...")
}

func TestModel_SnapshotMsg(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(SnapshotMsg{snapshot: Snapshot{
		Status:    "ok",
		Issues:    []json.RawMessage{},
		FetchedAt: time.Date(2026, time.January, 1, 12, 30, 0, 0, time.UTC),
	}})

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	require.NotNil(t, m.snapshot)

	view := m.View()
	assert.Contains(t, view, "health:")
	assert.Contains(t, view, "ok")
	assert.Contains(t, view, "No issues.")
	assert.Contains(t, view, "updated 12:30:00")
}

func TestModel_ErrorMsg(t *testing.T) {
	m := newTestModel()

	m.Update(ErrorMsg{err: errors.New("connection refused")})

	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "Error: connection refused")
}

func TestModel_RefreshKey(t *testing.T) {
	m := newTestModel()
	m.Update(ErrorMsg{err: errors.New("down")})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	assert.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Nil(t, m.err)
}

func TestModel_RefreshIgnoredWhileLoading(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	assert.Nil(t, cmd)
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel()
		_, cmd := m.Update(key)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_WindowSizeResetsRenderer(t *testing.T) {
	m := newTestModel()
	m.Update(SnapshotMsg{snapshot: Snapshot{Status: "ok"}})
	m.View()
	require.NotNil(t, m.renderer)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Nil(t, m.renderer)
}

func TestIssuesMarkdown(t *testing.T) {
	assert.Equal(t, "## Issues (0)\n\n_No issues._\n", IssuesMarkdown(Snapshot{}))

	md := IssuesMarkdown(Snapshot{Issues: []json.RawMessage{json.RawMessage(`{}`)}})
	assert.Contains(t, md, "## Issues (1)")
	assert.Contains(t, md, "1. `{}`")
}

func TestRenderPlain(t *testing.T) {
	out, err := RenderPlain(Snapshot{Status: "ok"}, 60)

	require.NoError(t, err)
	assert.Contains(t, out, "health: ok")
	assert.Contains(t, out, "No issues.")
}
