package tui

import (
	"fmt"
	"strings"

	"github.com/harperreed/leadgen/analytics"
	"github.com/harperreed/leadgen/models"
)

// renderDashboardView shows summary metrics and status/source bars.
func (m Model) renderDashboardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("LEADGEN"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	leads, err := m.store.Leads()
	if err != nil {
		return s.String() + fmt.Sprintf("Error: %v", err)
	}

	summary := analytics.Summarize(leads)
	s.WriteString(fmt.Sprintf("  Total leads:      %d\n", summary.TotalLeads))
	s.WriteString(fmt.Sprintf("  Conversion rate:  %.1f%%\n", summary.ConversionRate))
	s.WriteString(fmt.Sprintf("  Active pipeline:  %d\n", summary.ActivePipeline))
	s.WriteString(fmt.Sprintf("  Lost leads:       %d\n", summary.LostLeads))
	s.WriteString("\n")

	s.WriteString(columnTitleStyle.Render("STATUS"))
	s.WriteString("\n")
	byStatus := analytics.StatusBreakdown(leads)
	for _, status := range models.Statuses() {
		s.WriteString(renderBar(string(status), byStatus[status], summary.TotalLeads))
	}
	s.WriteString("\n")

	s.WriteString(columnTitleStyle.Render("SOURCES"))
	s.WriteString("\n")
	bySource := analytics.SourceBreakdown(leads)
	for _, source := range models.Sources() {
		if bySource[source] == 0 {
			continue
		}
		s.WriteString(renderBar(string(source), bySource[source], summary.TotalLeads))
	}
	s.WriteString("\n")

	s.WriteString(helpStyle.Render("Tab: Switch views • q: Quit"))

	return s.String()
}

func renderBar(label string, count, total int) string {
	if total == 0 {
		total = 1
	}
	barLength := (count * 10) / total
	bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
	return fmt.Sprintf("  %-11s %s  %d\n", label, bar, count)
}
