// Package bubbletea provides the Bubble Tea TUI for the banter chat client.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown — when cancelled,
// the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SendDoneMsg signals that a send finished, successfully or not. Err is
// non-nil only for rejected sends (busy, empty input); generation failures
// surface inside the transcript instead.
type SendDoneMsg struct {
	Err error
}

// ExportDoneMsg reports the outcome of an export keypress.
type ExportDoneMsg struct {
	Path string
	Err  error
}
