// ABOUTME: Tests for the analytics, dedup, and CSV MCP tool handlers
// ABOUTME: Drives the read-only tools and the CSV boundary
package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadAnalytics(t *testing.T) {
	s := newTestStore(t)
	lh := NewLeadHandlers(s)
	ih := NewInsightHandlers(s)
	ctx := context.Background()

	a := createLead(t, lh, "A", "a@example.com")
	createLead(t, lh, "B", "b@example.com")
	_, _, err := lh.ChangeLeadStatus(ctx, nil, ChangeStatusInput{ID: a.ID, Status: "converted"})
	require.NoError(t, err)

	_, out, err := ih.LeadAnalytics(ctx, nil, AnalyticsInput{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalLeads)
	assert.InDelta(t, 50.0, out.ConversionRate, 0.001)
	assert.Equal(t, 1, out.ActivePipeline)
	assert.Equal(t, 0, out.LostLeads)
	assert.Equal(t, 1, out.ByStatus["new"])
	assert.Equal(t, 1, out.ByStatus["converted"])
	assert.Equal(t, 2, out.BySource["other"])

	require.Len(t, out.Timeline, 30)
	last := out.Timeline[29]
	assert.Equal(t, testNow.Format(time.DateOnly), last.Day)
	assert.Equal(t, 2, last.Count)
}

func TestFindDuplicateLeads(t *testing.T) {
	s := newTestStore(t)
	lh := NewLeadHandlers(s)
	ih := NewInsightHandlers(s)
	ctx := context.Background()

	createLead(t, lh, "A", "shared@example.com")
	createLead(t, lh, "B", "SHARED@example.com")
	createLead(t, lh, "C", "unique@example.com")

	_, out, err := ih.FindDuplicateLeads(ctx, nil, DuplicatesInput{})
	require.NoError(t, err)

	require.Equal(t, 1, out.Total)
	group := out.Groups[0]
	assert.Equal(t, "shared@example.com", group.Email)
	require.Len(t, group.Leads, 2)
	// New leads prepend, so B lists before A
	assert.Equal(t, "B", group.Leads[0].Name)
	assert.Equal(t, "A", group.Leads[1].Name)
}

func TestExportImportCSVRoundTrip(t *testing.T) {
	s := newTestStore(t)
	lh := NewLeadHandlers(s)
	ih := NewInsightHandlers(s)
	ctx := context.Background()

	_, _, err := lh.CreateLead(ctx, nil, CreateLeadInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "Acme, Inc.",
		Source:  "referral",
		Status:  "contacted",
	})
	require.NoError(t, err)

	_, exported, err := ih.ExportLeadsCSV(ctx, nil, ExportCSVInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, exported.Leads)
	assert.True(t, strings.HasPrefix(exported.CSV, "ID,Name,Email,"))
	assert.Contains(t, exported.CSV, `"Acme, Inc."`)

	_, imported, err := ih.ImportLeadsCSV(ctx, nil, ImportCSVInput{CSV: exported.CSV})
	require.NoError(t, err)
	assert.Equal(t, 1, imported.Imported)

	_, list, err := lh.ListLeads(ctx, nil, ListLeadsInput{})
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	// Imports append after existing leads
	appended := list.Leads[1]
	assert.Equal(t, "Jane Doe", appended.Name)
	assert.Equal(t, "referral", appended.Source)
	assert.Equal(t, "contacted", appended.Status)
	// Notes do not survive the round trip
	assert.Zero(t, appended.NotesCount)
}

func TestImportLeadsCSVRejectsEmpty(t *testing.T) {
	ih := NewInsightHandlers(newTestStore(t))
	ctx := context.Background()

	_, _, err := ih.ImportLeadsCSV(ctx, nil, ImportCSVInput{})
	assert.ErrorContains(t, err, "csv is required")

	_, _, err = ih.ImportLeadsCSV(ctx, nil, ImportCSVInput{CSV: "Name,Email\n,missingname@example.com"})
	assert.ErrorContains(t, err, "could not parse any valid leads")
}
