// ABOUTME: Analytics and duplicate-detection CLI commands
// ABOUTME: Renders the pipeline dashboard and duplicate clusters as text
package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/harperreed/leadgen/analytics"
	"github.com/harperreed/leadgen/dedup"
	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/store"
)

// AnalyticsCommand prints the pipeline dashboard: summary metrics,
// status and source breakdowns, and the 30-day acquisition trend.
func AnalyticsCommand(s *store.Store, _ []string) error {
	leads, err := s.Leads()
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	summary := analytics.Summarize(leads)

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("  LEAD PIPELINE")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()
	fmt.Printf("  Total leads:      %d\n", summary.TotalLeads)
	fmt.Printf("  Conversion rate:  %.1f%%\n", summary.ConversionRate)
	fmt.Printf("  Active pipeline:  %d\n", summary.ActivePipeline)
	fmt.Printf("  Lost leads:       %d\n", summary.LostLeads)
	fmt.Println()

	fmt.Println("STATUS")
	renderCounts(statusCounts(leads))
	fmt.Println()

	fmt.Println("SOURCES")
	renderCounts(sourceCounts(leads))
	fmt.Println()

	fmt.Println("ACQUISITION (LAST 30 DAYS)")
	timeline := analytics.AcquisitionTimeline(leads, s.Now())
	maxCount := 1
	for _, p := range timeline {
		if p.Count > maxCount {
			maxCount = p.Count
		}
	}
	for _, p := range timeline {
		if p.Count == 0 {
			continue
		}
		barLength := (p.Count * 20) / maxCount
		fmt.Printf("  %s %s %d\n", p.Day.Format(time.DateOnly), strings.Repeat("█", barLength), p.Count)
	}

	return nil
}

type labelCount struct {
	label string
	count int
}

// statusCounts orders the histogram by pipeline order, skipping absent
// statuses.
func statusCounts(leads []models.Lead) []labelCount {
	breakdown := analytics.StatusBreakdown(leads)
	var out []labelCount
	for _, status := range models.Statuses() {
		if count, ok := breakdown[status]; ok {
			out = append(out, labelCount{string(status), count})
		}
	}
	return out
}

func sourceCounts(leads []models.Lead) []labelCount {
	breakdown := analytics.SourceBreakdown(leads)
	var out []labelCount
	for _, source := range models.Sources() {
		if count, ok := breakdown[source]; ok {
			out = append(out, labelCount{string(source), count})
		}
	}
	return out
}

func renderCounts(counts []labelCount) {
	maxCount := 1
	for _, c := range counts {
		if c.count > maxCount {
			maxCount = c.count
		}
	}
	for _, c := range counts {
		barLength := (c.count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
		fmt.Printf("  %-11s %s  %d\n", c.label, bar, c.count)
	}
}

// DuplicatesCommand lists duplicate lead clusters by email.
func DuplicatesCommand(s *store.Store, _ []string) error {
	leads, err := s.Leads()
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	groups := dedup.FindDuplicates(leads)
	if len(groups) == 0 {
		fmt.Println("✓ No duplicate email addresses found")
		return nil
	}

	fmt.Printf("%d duplicate groups found\n\n", len(groups))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, group := range groups {
		fmt.Fprintf(w, "%s\t(%d leads)\n", group.Email, len(group.Leads))
		for _, lead := range group.Leads {
			fmt.Fprintf(w, "  %s\t%s\t%s\tcreated %s\n",
				lead.ID, lead.Name, lead.Status, lead.CreatedAt.Format(time.DateOnly))
		}
	}
	w.Flush()

	fmt.Println("\nRemove a duplicate with: leadgen leads delete <id>")
	return nil
}
