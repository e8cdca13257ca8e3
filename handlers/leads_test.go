// ABOUTME: Tests for the lead MCP tool handlers
// ABOUTME: Drives the tools end to end against an in-memory store
package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/leadgen/store"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	kv, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return store.New(kv, "guest", store.WithClock(func() time.Time { return testNow }))
}

func createLead(t *testing.T, h *LeadHandlers, name, email string) LeadOutput {
	t.Helper()
	_, out, err := h.CreateLead(context.Background(), nil, CreateLeadInput{
		Name:  name,
		Email: email,
	})
	require.NoError(t, err)
	return out
}

func TestCreateLeadDefaults(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))

	out := createLead(t, h, "Jane Doe", "jane@example.com")

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "other", out.Source)
	assert.Equal(t, "new", out.Status)
	assert.Equal(t, 1, out.Activities)
	// Base 20 plus the fresh lead_created activity
	assert.Equal(t, 25, out.Score)
	assert.Equal(t, "cold", out.Heat)
	assert.Equal(t, testNow.Format(time.RFC3339), out.CreatedAt)
}

func TestCreateLeadValidation(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	_, _, err := h.CreateLead(ctx, nil, CreateLeadInput{Email: "jane@example.com"})
	assert.ErrorContains(t, err, "name is required")

	_, _, err = h.CreateLead(ctx, nil, CreateLeadInput{Name: "Jane"})
	assert.ErrorContains(t, err, "email is required")

	_, _, err = h.CreateLead(ctx, nil, CreateLeadInput{Name: "Jane", Email: "j@x.com", Source: "fax"})
	assert.ErrorContains(t, err, "invalid source")

	_, _, err = h.CreateLead(ctx, nil, CreateLeadInput{Name: "Jane", Email: "j@x.com", Status: "maybe"})
	assert.ErrorContains(t, err, "invalid status")
}

func TestUpdateLead(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")

	_, out, err := h.UpdateLead(ctx, nil, UpdateLeadInput{
		ID:      lead.ID,
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Company: "Acme",
		Status:  "contacted",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", out.Name)
	assert.Equal(t, "Acme", out.Company)
	assert.Equal(t, "contacted", out.Status)
	// Edits never log
	assert.Equal(t, 1, out.Activities)
}

func TestDeleteLead(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")

	_, out, err := h.DeleteLead(ctx, nil, DeleteLeadInput{ID: lead.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Deleted)

	_, _, err = h.DeleteLead(ctx, nil, DeleteLeadInput{ID: lead.ID})
	assert.ErrorContains(t, err, "lead not found")
}

func TestChangeLeadStatus(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")

	_, out, err := h.ChangeLeadStatus(ctx, nil, ChangeStatusInput{ID: lead.ID, Status: "converted"})
	require.NoError(t, err)
	assert.Equal(t, "converted", out.Status)
	assert.Equal(t, 2, out.Activities)

	_, _, err = h.ChangeLeadStatus(ctx, nil, ChangeStatusInput{ID: lead.ID, Status: "bogus"})
	assert.ErrorContains(t, err, "invalid status")
}

func TestBulkTools(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	a := createLead(t, h, "A", "a@example.com")
	b := createLead(t, h, "B", "b@example.com")

	_, bulk, err := h.BulkChangeLeadStatus(ctx, nil, BulkStatusInput{
		IDs:    []string{a.ID, b.ID, "missing"},
		Status: "lost",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, bulk.Affected)

	_, deleted, err := h.BulkDeleteLeads(ctx, nil, BulkDeleteInput{IDs: []string{a.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.Affected)

	_, list, err := h.ListLeads(ctx, nil, ListLeadsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestNoteAndTaskTools(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")

	_, noted, err := h.AddLeadNote(ctx, nil, AddNoteInput{LeadID: lead.ID, Content: "left voicemail"})
	require.NoError(t, err)
	assert.Equal(t, 1, noted.NotesCount)
	assert.Equal(t, 2, noted.Activities)

	_, tasked, err := h.AddLeadTask(ctx, nil, AddTaskInput{LeadID: lead.ID, Title: "Send proposal"})
	require.NoError(t, err)
	assert.Equal(t, 1, tasked.TasksCount)
	// Task creation logs nothing
	assert.Equal(t, 2, tasked.Activities)

	_, detail, err := h.GetLead(ctx, nil, GetLeadInput{ID: lead.ID})
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 1)
	task := detail.Tasks[0]
	assert.Equal(t, "todo", task.Type)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format(time.RFC3339), task.DueDate)

	_, toggled, err := h.ToggleLeadTask(ctx, nil, ToggleTaskInput{LeadID: lead.ID, TaskID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, toggled.Activities)
}

func TestAddLeadTaskRejectsBadInput(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")

	_, _, err := h.AddLeadTask(ctx, nil, AddTaskInput{LeadID: lead.ID, Title: "x", Type: "fax"})
	assert.ErrorContains(t, err, "invalid type")

	_, _, err = h.AddLeadTask(ctx, nil, AddTaskInput{LeadID: lead.ID, Title: "x", DueDate: "next tuesday"})
	assert.ErrorContains(t, err, "invalid due_date")
}

func TestListLeadsFilters(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	_, _, err := h.CreateLead(ctx, nil, CreateLeadInput{
		Name: "A", Email: "a@example.com", Source: "website", Status: "new",
	})
	require.NoError(t, err)
	_, _, err = h.CreateLead(ctx, nil, CreateLeadInput{
		Name: "B", Email: "b@example.com", Source: "referral", Status: "contacted",
	})
	require.NoError(t, err)

	_, byStatus, err := h.ListLeads(ctx, nil, ListLeadsInput{Status: "contacted"})
	require.NoError(t, err)
	require.Equal(t, 1, byStatus.Total)
	assert.Equal(t, "B", byStatus.Leads[0].Name)

	_, bySource, err := h.ListLeads(ctx, nil, ListLeadsInput{Source: "website"})
	require.NoError(t, err)
	require.Equal(t, 1, bySource.Total)
	assert.Equal(t, "A", bySource.Leads[0].Name)
}

func TestGetLeadDetail(t *testing.T) {
	h := NewLeadHandlers(newTestStore(t))
	ctx := context.Background()

	lead := createLead(t, h, "Jane Doe", "jane@example.com")
	_, _, err := h.AddLeadNote(ctx, nil, AddNoteInput{LeadID: lead.ID, Content: "context"})
	require.NoError(t, err)

	_, detail, err := h.GetLead(ctx, nil, GetLeadInput{ID: lead.ID})
	require.NoError(t, err)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, "context", detail.Notes[0].Content)
	require.Len(t, detail.ActivityLog, 2)
	assert.Equal(t, "lead_created", detail.ActivityLog[0].Type)
	assert.Equal(t, "note_added", detail.ActivityLog[1].Type)

	_, _, err = h.GetLead(ctx, nil, GetLeadInput{ID: "missing"})
	assert.ErrorContains(t, err, "lead not found")
}
