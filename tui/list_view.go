package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/leadgen/scoring"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("LEADGEN"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderLeadsTable())
	s.WriteString("\n\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderLeadsTable() string {
	leads, err := m.store.Leads()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Company", Width: 18},
		{Title: "Status", Width: 10},
		{Title: "Score", Width: 6},
		{Title: "Heat", Width: 6},
	}

	now := m.store.Now()
	var rows []table.Row
	for _, lead := range leads {
		score := scoring.Score(lead, now)
		rows = append(rows, table.Row{
			lead.Name,
			lead.Email,
			lead.Company,
			string(lead.Status),
			fmt.Sprintf("%d", score),
			string(scoring.HeatFor(score)),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch views",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		m.selectedRow++
	}

	return m, nil
}
