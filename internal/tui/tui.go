package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tick-cli/internal/model"
	"tick-cli/internal/store"
)

// Run starts the interactive session over already-loaded todos and blocks
// until the user quits.
func Run(s store.Store, items []model.TodoItem, logger *log.Logger) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s, items, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
