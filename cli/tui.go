// ABOUTME: TUI launcher command
// ABOUTME: Starts the bubbletea interface against the active account
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/leadgen/store"
	"github.com/harperreed/leadgen/tui"
)

// TUICommand starts the interactive terminal interface.
func TUICommand(s *store.Store) error {
	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
