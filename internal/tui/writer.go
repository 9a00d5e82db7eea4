package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"mission-copilot/internal/mission"
)

// Writer shows each plan in the terminal panel, blocking until the user quits.
type Writer struct {
	run func(tea.Model) error
}

// NewWriter creates a Writer that drives a full-screen bubbletea program.
func NewWriter() *Writer {
	return &Writer{run: func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}}
}

// WritePlan implements output.Writer.
func (w *Writer) WritePlan(p *mission.Plan) error {
	return w.run(newModel(p))
}

// Run shows a single plan.
func Run(p *mission.Plan) error {
	return NewWriter().WritePlan(p)
}

// Available reports whether stdin and stdout are terminals.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
