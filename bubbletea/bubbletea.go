// Package bubbletea provides the Bubble Tea TUI for the neochat client.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// tickInterval is the display poll cadence. Inbound messages sit in
	// the queue until the next tick drains them.
	tickInterval = 100 * time.Millisecond

	// saveInterval is the periodic history save cadence.
	saveInterval = time.Minute

	// saveEvery also saves the history after every saveEvery-th sent
	// message, independently of the periodic timer.
	saveEvery = 10
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. Cancelling the context quits the program; the same context bounds
// the streaming subscription and any in-flight sends.
func Run(ctx context.Context, m Model) error {
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// TickMsg drives the display poll: each tick drains the inbound queue into
// the transcript.
type TickMsg time.Time

// SaveTickMsg drives the periodic history save.
type SaveTickMsg time.Time

// ListenerDoneMsg signals that the streaming subscription has terminated.
// There is no reconnect; the session continues without live updates.
type ListenerDoneMsg struct {
	Err error
}

// SendDoneMsg signals that an outbound send has completed.
type SendDoneMsg struct {
	Err error
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func saveTick() tea.Cmd {
	return tea.Tick(saveInterval, func(t time.Time) tea.Msg {
		return SaveTickMsg(t)
	})
}
