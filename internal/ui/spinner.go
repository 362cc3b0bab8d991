package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"devcap/internal/logging"
	"devcap/internal/theme"
)

// progressMsg updates the repository counter
type progressMsg struct {
	done  int
	total int
}

// stopMsg replaces the spinner with a final line and quits
type stopMsg struct {
	final string
}

// spinnerModel is the bubbletea model behind Spinner
type spinnerModel struct {
	done     int
	final    string
	message  string
	quitting bool
	spinner  spinner.Model
	total    int
}

func newSpinnerModel(message string, styles *theme.Styles) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return spinnerModel{message: message, spinner: s}
}

// Init implements tea.Model
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil
	case stopMsg:
		m.final = msg.final
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m spinnerModel) View() string {
	if m.quitting {
		if m.final == "" {
			return ""
		}
		return m.final + "\n"
	}
	if m.total > 0 {
		return fmt.Sprintf("%s %s (%d/%d)", m.spinner.View(), m.message, m.done, m.total)
	}
	return m.spinner.View() + " " + m.message
}

// Spinner shows scan progress on a terminal while the report is collected.
// A nil *Spinner is valid and does nothing.
type Spinner struct {
	done    chan struct{}
	program *tea.Program
}

// StartSpinner starts animating message on w. Input and signals are left to the caller.
func StartSpinner(w io.Writer, message string, styles *theme.Styles) *Spinner {
	p := tea.NewProgram(
		newSpinnerModel(message, styles),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s := &Spinner{done: make(chan struct{}), program: p}

	go func() {
		defer close(s.done)
		if _, err := p.Run(); err != nil {
			logging.Logger.Debug("Spinner stopped with error", "error", err)
		}
	}()

	return s
}

// SetProgress reports how many repositories have been scanned; safe from any goroutine
func (s *Spinner) SetProgress(done, total int) {
	if s == nil {
		return
	}
	s.program.Send(progressMsg{done: done, total: total})
}

// Stop replaces the spinner with final (omitted when empty) and waits for the terminal to be restored
func (s *Spinner) Stop(final string) {
	if s == nil {
		return
	}
	s.program.Send(stopMsg{final: final})
	<-s.done
}
