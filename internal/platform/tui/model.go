package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// titleMsg asks the program to set the window title.
type titleMsg string

// cursorMsg asks the program to show (true) or hide (false) the cursor.
type cursorMsg bool

// flushMsg forces a repaint outside the refresh cadence.
type flushMsg struct{}

// model is the Bubble Tea model behind a Terminal. It owns no game state:
// key presses are queued for the game and View paints the shared screen.
type model struct {
	term *Terminal
}

// Init starts the refresh loop.
func (m model) Init() tea.Cmd {
	return tickCmd(m.term.refreshRate)
}

// Update handles messages from the program and from the game goroutine.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, k := range keysFromMsg(msg) {
			m.term.push(k)
		}

	case tea.WindowSizeMsg:
		m.term.resized(msg.Width, msg.Height)

	case refreshMsg:
		return m, tickCmd(m.term.refreshRate)

	case titleMsg:
		return m, tea.SetWindowTitle(string(msg))

	case cursorMsg:
		if msg {
			return m, tea.ShowCursor
		}
		return m, tea.HideCursor
	}

	return m, nil
}

// View renders the screen buffer.
func (m model) View() string {
	m.term.mu.Lock()
	defer m.term.mu.Unlock()

	return RenderScreen(m.term.screen)
}
