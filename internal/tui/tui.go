package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Run() error {
	applyColorProfilePreference()
	applyThemePreference()
	applyGlyphPreference()
	m := newAppModel()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
