package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"devcap/internal/theme"
)

// detailModel is a scrollable pager for one commit
type detailModel struct {
	content     string
	initialized bool
	quit        key.Binding
	styles      *theme.Styles
	title       string
	viewport    viewport.Model
}

func newDetailModel(title, content string, styles *theme.Styles) *detailModel {
	vp := viewport.New(0, 0)
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")

	return &detailModel{
		content:  content,
		quit:     key.NewBinding(key.WithKeys("q", "esc", "enter", "ctrl+c")),
		styles:   styles,
		title:    title,
		viewport: vp,
	}
}

// Init implements tea.Model
func (d *detailModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (d *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Title: 2 lines, footer: 2 lines
		height := msg.Height - 4
		if height < 5 {
			height = 5
		}
		d.viewport.Width = msg.Width
		d.viewport.Height = height
		d.viewport.SetContent(d.content)
		d.initialized = true
		return d, nil

	case tea.KeyMsg:
		if key.Matches(msg, d.quit) {
			return d, tea.Quit
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements tea.Model
func (d *detailModel) View() string {
	if !d.initialized {
		return "Loading commit..."
	}

	footer := d.styles.Muted.Render("q/esc/enter to go back • ↑↓/jk/PgUp/PgDn to scroll")
	return d.styles.Title.Render(d.title) + "\n\n" + d.viewport.View() + "\n\n" + footer
}

// ShowDetail pages content full-screen until the user leaves
func ShowDetail(title, content string, styles *theme.Styles) error {
	p := tea.NewProgram(newDetailModel(title, content, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
