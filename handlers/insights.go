// ABOUTME: Analytics, deduplication, and CSV MCP tool handlers
// ABOUTME: Read-only aggregations plus the CSV import/export boundary
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/leadgen/analytics"
	"github.com/harperreed/leadgen/csvutil"
	"github.com/harperreed/leadgen/dedup"
	"github.com/harperreed/leadgen/store"
)

type InsightHandlers struct {
	store *store.Store
}

func NewInsightHandlers(s *store.Store) *InsightHandlers {
	return &InsightHandlers{store: s}
}

type AnalyticsInput struct{}

type TimelinePointOutput struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type AnalyticsOutput struct {
	TotalLeads     int                   `json:"total_leads"`
	ConversionRate float64               `json:"conversion_rate"`
	ActivePipeline int                   `json:"active_pipeline"`
	LostLeads      int                   `json:"lost_leads"`
	ByStatus       map[string]int        `json:"by_status"`
	BySource       map[string]int        `json:"by_source"`
	Timeline       []TimelinePointOutput `json:"timeline"`
}

func (h *InsightHandlers) LeadAnalytics(_ context.Context, _ *mcp.CallToolRequest, _ AnalyticsInput) (*mcp.CallToolResult, AnalyticsOutput, error) {
	leads, err := h.store.Leads()
	if err != nil {
		return nil, AnalyticsOutput{}, fmt.Errorf("failed to load leads: %w", err)
	}

	summary := analytics.Summarize(leads)
	out := AnalyticsOutput{
		TotalLeads:     summary.TotalLeads,
		ConversionRate: summary.ConversionRate,
		ActivePipeline: summary.ActivePipeline,
		LostLeads:      summary.LostLeads,
		ByStatus:       map[string]int{},
		BySource:       map[string]int{},
		Timeline:       []TimelinePointOutput{},
	}

	for status, count := range analytics.StatusBreakdown(leads) {
		out.ByStatus[string(status)] = count
	}
	for source, count := range analytics.SourceBreakdown(leads) {
		out.BySource[string(source)] = count
	}
	for _, point := range analytics.AcquisitionTimeline(leads, h.store.Now()) {
		out.Timeline = append(out.Timeline, TimelinePointOutput{
			Day:   point.Day.Format(time.DateOnly),
			Count: point.Count,
		})
	}

	return nil, out, nil
}

type DuplicatesInput struct{}

type DuplicateGroupOutput struct {
	Email string       `json:"email"`
	Leads []LeadOutput `json:"leads"`
}

type DuplicatesOutput struct {
	Groups []DuplicateGroupOutput `json:"groups"`
	Total  int                    `json:"total_groups"`
}

func (h *InsightHandlers) FindDuplicateLeads(_ context.Context, _ *mcp.CallToolRequest, _ DuplicatesInput) (*mcp.CallToolResult, DuplicatesOutput, error) {
	leads, err := h.store.Leads()
	if err != nil {
		return nil, DuplicatesOutput{}, fmt.Errorf("failed to load leads: %w", err)
	}

	lh := &LeadHandlers{store: h.store}
	out := DuplicatesOutput{Groups: []DuplicateGroupOutput{}}
	for _, group := range dedup.FindDuplicates(leads) {
		g := DuplicateGroupOutput{Email: group.Email}
		for i := range group.Leads {
			g.Leads = append(g.Leads, lh.leadOutput(&group.Leads[i]))
		}
		out.Groups = append(out.Groups, g)
	}
	out.Total = len(out.Groups)

	return nil, out, nil
}

type ExportCSVInput struct{}

type ExportCSVOutput struct {
	CSV   string `json:"csv"`
	Leads int    `json:"leads"`
}

func (h *InsightHandlers) ExportLeadsCSV(_ context.Context, _ *mcp.CallToolRequest, _ ExportCSVInput) (*mcp.CallToolResult, ExportCSVOutput, error) {
	leads, err := h.store.Leads()
	if err != nil {
		return nil, ExportCSVOutput{}, fmt.Errorf("failed to load leads: %w", err)
	}

	return nil, ExportCSVOutput{
		CSV:   csvutil.ExportLeads(leads),
		Leads: len(leads),
	}, nil
}

type ImportCSVInput struct {
	CSV string `json:"csv" jsonschema:"CSV text with a header row; rows need at least name and email (required)"`
}

type ImportCSVOutput struct {
	Imported int `json:"imported"`
}

func (h *InsightHandlers) ImportLeadsCSV(_ context.Context, _ *mcp.CallToolRequest, input ImportCSVInput) (*mcp.CallToolResult, ImportCSVOutput, error) {
	if input.CSV == "" {
		return nil, ImportCSVOutput{}, fmt.Errorf("csv is required")
	}

	records := csvutil.ParseLeads(input.CSV)
	if len(records) == 0 {
		return nil, ImportCSVOutput{}, fmt.Errorf("could not parse any valid leads from CSV")
	}

	imported, err := h.store.ImportLeads(records)
	if err != nil {
		return nil, ImportCSVOutput{}, fmt.Errorf("failed to import leads: %w", err)
	}

	return nil, ImportCSVOutput{Imported: imported}, nil
}
