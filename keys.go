package main

import tea "github.com/charmbracelet/bubbletea"

func isQuitKey(key string) bool {
	switch key {
	case "esc", "q", "ctrl+c":
		return true
	default:
		return false
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuitKey(msg.String()) {
		m.log.WithField("squares", m.state.Board.Len()).Info("Quit requested")
		return m, tea.Quit
	}
	return m, nil
}
