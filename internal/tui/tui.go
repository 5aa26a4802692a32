// Package tui is the interactive board: columns side by side, inline
// editing, and a keyboard drag engine that feeds drag-start/over/end events
// to the controller.
package tui

import (
	"kanban-cli/internal/controller"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// StoreLabel is shown in the header (e.g. "sqlite ~/.kanban").
	StoreLabel string
}

// Run blocks until the user quits. ctrl must already be loaded.
func Run(ctrl *controller.Controller, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(ctrl, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
