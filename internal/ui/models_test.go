package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcap/internal/output"
)

func TestSpinnerModel(t *testing.T) {
	styles := output.NewStyles(&bytes.Buffer{}, false)
	m := newSpinnerModel("Scanning repositories...", styles)

	assert.Contains(t, m.View(), "Scanning repositories...")
	assert.NotContains(t, m.View(), "/")

	updated, cmd := m.Update(progressMsg{done: 2, total: 5})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "Scanning repositories... (2/5)")

	final, cmd := updated.Update(stopMsg{final: "✓ Found 3 commits in 2 projects"})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "✓ Found 3 commits in 2 projects\n", final.View())

	cleared, _ := updated.Update(stopMsg{})
	assert.Empty(t, cleared.View())
}

func TestNilSpinnerIsNoop(t *testing.T) {
	var s *Spinner
	assert.NotPanics(t, func() {
		s.SetProgress(1, 2)
		s.Stop("done")
	})
}

func TestDetailModel(t *testing.T) {
	styles := output.NewStyles(&bytes.Buffer{}, false)
	d := newDetailModel("api · abc1234", "commit abc1234\nAuthor: Jane\n\n    feat: add login\n", styles)

	assert.Equal(t, "Loading commit...", d.View())

	_, cmd := d.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)

	view := d.View()
	assert.Contains(t, view, "api · abc1234")
	assert.Contains(t, view, "feat: add login")
	assert.Contains(t, view, "q/esc/enter to go back")

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
