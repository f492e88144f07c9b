package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	top := m.Router.Top()

	// Text entry and the open picker own the keyboard
	if top.Capturing() {
		return m, top.Update(msg)
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Help, Keys.Back, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Back):
		if h, ok := top.(backHandler); ok {
			if handled, cmd := h.HandleBack(); handled {
				return m, cmd
			}
		}
		return m.back()
	}

	return m, top.Update(msg)
}
