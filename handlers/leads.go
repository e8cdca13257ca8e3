// ABOUTME: Lead MCP tool handlers
// ABOUTME: Implements create/update/delete, status, note, and task tools
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/scoring"
	"github.com/harperreed/leadgen/store"
)

type LeadHandlers struct {
	store *store.Store
}

func NewLeadHandlers(s *store.Store) *LeadHandlers {
	return &LeadHandlers{store: s}
}

type CreateLeadInput struct {
	Name    string `json:"name" jsonschema:"Lead name (required)"`
	Email   string `json:"email" jsonschema:"Email address (required)"`
	Phone   string `json:"phone,omitempty" jsonschema:"Phone number"`
	Company string `json:"company,omitempty" jsonschema:"Company name"`
	Source  string `json:"source,omitempty" jsonschema:"Lead source: website, referral, social, email, phone, other (default other)"`
	Status  string `json:"status,omitempty" jsonschema:"Lead status: new, contacted, converted, lost (default new)"`
}

type LeadOutput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
	Heat       string `json:"heat"`
	NotesCount int    `json:"notes_count"`
	TasksCount int    `json:"tasks_count"`
	Activities int    `json:"activities_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (h *LeadHandlers) leadOutput(lead *models.Lead) LeadOutput {
	score := scoring.Score(*lead, h.store.Now())
	return LeadOutput{
		ID:         lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Company:    lead.Company,
		Source:     string(lead.Source),
		Status:     string(lead.Status),
		Score:      score,
		Heat:       string(scoring.HeatFor(score)),
		NotesCount: len(lead.Notes),
		TasksCount: len(lead.Tasks),
		Activities: len(lead.Activities),
		CreatedAt:  lead.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  lead.UpdatedAt.Format(time.RFC3339),
	}
}

// resolveFields validates and defaults the source/status strings shared
// by the create and update tools.
func resolveFields(input CreateLeadInput) (store.LeadFields, error) {
	source := models.LeadSource(input.Source)
	if input.Source == "" {
		source = models.SourceOther
	} else if !models.ValidSource(source) {
		return store.LeadFields{}, fmt.Errorf("invalid source: %s (valid: website, referral, social, email, phone, other)", input.Source)
	}

	status := models.LeadStatus(input.Status)
	if input.Status == "" {
		status = models.StatusNew
	} else if !models.ValidStatus(status) {
		return store.LeadFields{}, fmt.Errorf("invalid status: %s (valid: new, contacted, converted, lost)", input.Status)
	}

	return store.LeadFields{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Source:  source,
		Status:  status,
	}, nil
}

func (h *LeadHandlers) CreateLead(_ context.Context, _ *mcp.CallToolRequest, input CreateLeadInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.Name == "" {
		return nil, LeadOutput{}, fmt.Errorf("name is required")
	}
	if input.Email == "" {
		return nil, LeadOutput{}, fmt.Errorf("email is required")
	}

	fields, err := resolveFields(input)
	if err != nil {
		return nil, LeadOutput{}, err
	}

	lead, err := h.store.CreateLead(fields)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to create lead: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type UpdateLeadInput struct {
	ID      string `json:"id" jsonschema:"Lead ID (required)"`
	Name    string `json:"name" jsonschema:"Lead name (required)"`
	Email   string `json:"email" jsonschema:"Email address (required)"`
	Phone   string `json:"phone,omitempty" jsonschema:"Phone number"`
	Company string `json:"company,omitempty" jsonschema:"Company name"`
	Source  string `json:"source,omitempty" jsonschema:"Lead source"`
	Status  string `json:"status,omitempty" jsonschema:"Lead status"`
}

func (h *LeadHandlers) UpdateLead(_ context.Context, _ *mcp.CallToolRequest, input UpdateLeadInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.ID == "" {
		return nil, LeadOutput{}, fmt.Errorf("id is required")
	}
	if input.Name == "" {
		return nil, LeadOutput{}, fmt.Errorf("name is required")
	}
	if input.Email == "" {
		return nil, LeadOutput{}, fmt.Errorf("email is required")
	}

	fields, err := resolveFields(CreateLeadInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Source:  input.Source,
		Status:  input.Status,
	})
	if err != nil {
		return nil, LeadOutput{}, err
	}

	lead, err := h.store.UpdateLead(input.ID, fields)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to update lead: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type DeleteLeadInput struct {
	ID string `json:"id" jsonschema:"Lead ID (required)"`
}

type DeleteLeadOutput struct {
	Deleted int `json:"deleted"`
}

func (h *LeadHandlers) DeleteLead(_ context.Context, _ *mcp.CallToolRequest, input DeleteLeadInput) (*mcp.CallToolResult, DeleteLeadOutput, error) {
	if input.ID == "" {
		return nil, DeleteLeadOutput{}, fmt.Errorf("id is required")
	}

	if err := h.store.DeleteLead(input.ID); err != nil {
		return nil, DeleteLeadOutput{}, fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil, DeleteLeadOutput{Deleted: 1}, nil
}

type ChangeStatusInput struct {
	ID     string `json:"id" jsonschema:"Lead ID (required)"`
	Status string `json:"status" jsonschema:"New status: new, contacted, converted, lost (required)"`
}

func (h *LeadHandlers) ChangeLeadStatus(_ context.Context, _ *mcp.CallToolRequest, input ChangeStatusInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.ID == "" {
		return nil, LeadOutput{}, fmt.Errorf("id is required")
	}
	status := models.LeadStatus(input.Status)
	if !models.ValidStatus(status) {
		return nil, LeadOutput{}, fmt.Errorf("invalid status: %s (valid: new, contacted, converted, lost)", input.Status)
	}

	lead, err := h.store.ChangeStatus(input.ID, status)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to change status: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type BulkStatusInput struct {
	IDs    []string `json:"ids" jsonschema:"Lead IDs (required)"`
	Status string   `json:"status" jsonschema:"New status for all matched leads (required)"`
}

type BulkOutput struct {
	Affected int `json:"affected"`
}

func (h *LeadHandlers) BulkChangeLeadStatus(_ context.Context, _ *mcp.CallToolRequest, input BulkStatusInput) (*mcp.CallToolResult, BulkOutput, error) {
	if len(input.IDs) == 0 {
		return nil, BulkOutput{}, fmt.Errorf("ids is required")
	}
	status := models.LeadStatus(input.Status)
	if !models.ValidStatus(status) {
		return nil, BulkOutput{}, fmt.Errorf("invalid status: %s (valid: new, contacted, converted, lost)", input.Status)
	}

	affected, err := h.store.BulkChangeStatus(input.IDs, status)
	if err != nil {
		return nil, BulkOutput{}, fmt.Errorf("failed to change statuses: %w", err)
	}

	return nil, BulkOutput{Affected: affected}, nil
}

type BulkDeleteInput struct {
	IDs []string `json:"ids" jsonschema:"Lead IDs (required)"`
}

func (h *LeadHandlers) BulkDeleteLeads(_ context.Context, _ *mcp.CallToolRequest, input BulkDeleteInput) (*mcp.CallToolResult, BulkOutput, error) {
	if len(input.IDs) == 0 {
		return nil, BulkOutput{}, fmt.Errorf("ids is required")
	}

	affected, err := h.store.BulkDelete(input.IDs)
	if err != nil {
		return nil, BulkOutput{}, fmt.Errorf("failed to delete leads: %w", err)
	}

	return nil, BulkOutput{Affected: affected}, nil
}

type AddNoteInput struct {
	LeadID  string `json:"lead_id" jsonschema:"Lead ID (required)"`
	Content string `json:"content" jsonschema:"Note text (required)"`
}

func (h *LeadHandlers) AddLeadNote(_ context.Context, _ *mcp.CallToolRequest, input AddNoteInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.LeadID == "" {
		return nil, LeadOutput{}, fmt.Errorf("lead_id is required")
	}
	if input.Content == "" {
		return nil, LeadOutput{}, fmt.Errorf("content is required")
	}

	lead, err := h.store.AddNote(input.LeadID, input.Content)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to add note: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type AddTaskInput struct {
	LeadID  string `json:"lead_id" jsonschema:"Lead ID (required)"`
	Title   string `json:"title" jsonschema:"Task title (required)"`
	Type    string `json:"type,omitempty" jsonschema:"Task type: call, email, meeting, todo (default todo)"`
	DueDate string `json:"due_date,omitempty" jsonschema:"Due date in ISO 8601 format (default: one week out)"`
}

func (h *LeadHandlers) AddLeadTask(_ context.Context, _ *mcp.CallToolRequest, input AddTaskInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.LeadID == "" {
		return nil, LeadOutput{}, fmt.Errorf("lead_id is required")
	}
	if input.Title == "" {
		return nil, LeadOutput{}, fmt.Errorf("title is required")
	}

	taskType := models.TaskType(input.Type)
	if input.Type == "" {
		taskType = models.TaskTodo
	} else if !models.ValidTaskType(taskType) {
		return nil, LeadOutput{}, fmt.Errorf("invalid type: %s (valid: call, email, meeting, todo)", input.Type)
	}

	dueDate := h.store.Now().AddDate(0, 0, 7)
	if input.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.DueDate)
		if err != nil {
			return nil, LeadOutput{}, fmt.Errorf("invalid due_date format (use ISO 8601/RFC3339): %w", err)
		}
		dueDate = parsed
	}

	lead, err := h.store.AddTask(input.LeadID, input.Title, taskType, dueDate)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to add task: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type ToggleTaskInput struct {
	LeadID string `json:"lead_id" jsonschema:"Lead ID (required)"`
	TaskID string `json:"task_id" jsonschema:"Task ID (required)"`
}

func (h *LeadHandlers) ToggleLeadTask(_ context.Context, _ *mcp.CallToolRequest, input ToggleTaskInput) (*mcp.CallToolResult, LeadOutput, error) {
	if input.LeadID == "" {
		return nil, LeadOutput{}, fmt.Errorf("lead_id is required")
	}
	if input.TaskID == "" {
		return nil, LeadOutput{}, fmt.Errorf("task_id is required")
	}

	lead, err := h.store.ToggleTask(input.LeadID, input.TaskID)
	if err != nil {
		return nil, LeadOutput{}, fmt.Errorf("failed to toggle task: %w", err)
	}

	return nil, h.leadOutput(lead), nil
}

type ListLeadsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status"`
	Source string `json:"source,omitempty" jsonschema:"Filter by source"`
}

type ListLeadsOutput struct {
	Leads []LeadOutput `json:"leads"`
	Total int          `json:"total"`
}

func (h *LeadHandlers) ListLeads(_ context.Context, _ *mcp.CallToolRequest, input ListLeadsInput) (*mcp.CallToolResult, ListLeadsOutput, error) {
	leads, err := h.store.Leads()
	if err != nil {
		return nil, ListLeadsOutput{}, fmt.Errorf("failed to load leads: %w", err)
	}

	out := ListLeadsOutput{Leads: []LeadOutput{}}
	for i := range leads {
		if input.Status != "" && string(leads[i].Status) != input.Status {
			continue
		}
		if input.Source != "" && string(leads[i].Source) != input.Source {
			continue
		}
		out.Leads = append(out.Leads, h.leadOutput(&leads[i]))
	}
	out.Total = len(out.Leads)

	return nil, out, nil
}

type GetLeadInput struct {
	ID string `json:"id" jsonschema:"Lead ID (required)"`
}

type NoteOutput struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type TaskOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	DueDate   string `json:"due_date"`
	Completed bool   `json:"completed"`
}

type ActivityOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type LeadDetailOutput struct {
	LeadOutput
	Notes       []NoteOutput     `json:"notes"`
	Tasks       []TaskOutput     `json:"tasks"`
	ActivityLog []ActivityOutput `json:"activity_log"`
}

func (h *LeadHandlers) GetLead(_ context.Context, _ *mcp.CallToolRequest, input GetLeadInput) (*mcp.CallToolResult, LeadDetailOutput, error) {
	if input.ID == "" {
		return nil, LeadDetailOutput{}, fmt.Errorf("id is required")
	}

	lead, err := h.store.Get(input.ID)
	if err != nil {
		return nil, LeadDetailOutput{}, fmt.Errorf("failed to get lead: %w", err)
	}

	detail := LeadDetailOutput{
		LeadOutput:  h.leadOutput(lead),
		Notes:       []NoteOutput{},
		Tasks:       []TaskOutput{},
		ActivityLog: []ActivityOutput{},
	}
	for _, n := range lead.Notes {
		detail.Notes = append(detail.Notes, NoteOutput{
			ID:        n.ID,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, t := range lead.Tasks {
		detail.Tasks = append(detail.Tasks, TaskOutput{
			ID:        t.ID,
			Title:     t.Title,
			Type:      string(t.Type),
			DueDate:   t.DueDate.Format(time.RFC3339),
			Completed: t.Completed,
		})
	}
	for _, a := range lead.Activities {
		detail.ActivityLog = append(detail.ActivityLog, ActivityOutput{
			ID:          a.ID,
			Type:        string(a.Type),
			Description: a.Description,
			Timestamp:   a.Timestamp.Format(time.RFC3339),
		})
	}

	return nil, detail, nil
}
