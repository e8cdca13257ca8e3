package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/scoring"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(24)

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	hotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	coldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// renderBoardView lays the pipeline out as a kanban board, one column
// per status.
func (m Model) renderBoardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("LEADGEN"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	leads, err := m.store.Leads()
	if err != nil {
		return s.String() + fmt.Sprintf("Error: %v", err)
	}

	now := m.store.Now()
	var columns []string
	for _, status := range models.Statuses() {
		var cards []string
		cards = append(cards, columnTitleStyle.Render(strings.ToUpper(string(status))))

		for _, lead := range leads {
			if lead.Status != status {
				continue
			}
			score := scoring.Score(lead, now)
			heat := scoring.HeatFor(score)
			cards = append(cards, fmt.Sprintf("%s\n%s",
				lead.Name, heatStyleFor(heat).Render(fmt.Sprintf("%s %d", heat, score))))
		}

		columns = append(columns, columnStyle.Render(strings.Join(cards, "\n\n")))
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Tab: Switch views • q: Quit"))

	return s.String()
}

func heatStyleFor(heat scoring.Heat) lipgloss.Style {
	switch heat {
	case scoring.HeatHot:
		return hotStyle
	case scoring.HeatWarm:
		return warmStyle
	default:
		return coldStyle
	}
}
