// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the lead tracker as MCP tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/leadgen/handlers"
	"github.com/harperreed/leadgen/store"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(s *store.Store) error {
	log.Println("Starting leadgen MCP server...")

	leadHandlers := handlers.NewLeadHandlers(s)
	insightHandlers := handlers.NewInsightHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "leadgen",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_lead",
		Description: "Add a new lead to the pipeline",
	}, leadHandlers.CreateLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_lead",
		Description: "Update a lead's contact fields, source, and status (no activity is logged)",
	}, leadHandlers.UpdateLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_lead",
		Description: "Delete a lead along with its notes, tasks, and activity history",
	}, leadHandlers.DeleteLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "change_lead_status",
		Description: "Move a lead to a new pipeline status and log the transition",
	}, leadHandlers.ChangeLeadStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bulk_change_lead_status",
		Description: "Move several leads to a new status; each lead gets its own activity entry",
	}, leadHandlers.BulkChangeLeadStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bulk_delete_leads",
		Description: "Delete several leads at once",
	}, leadHandlers.BulkDeleteLeads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_lead_note",
		Description: "Append a note to a lead and log a note_added activity",
	}, leadHandlers.AddLeadNote)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_lead_task",
		Description: "Add a follow-up task (call, email, meeting, todo) to a lead",
	}, leadHandlers.AddLeadTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_lead_task",
		Description: "Toggle a task's completion; completing it logs a task_completed activity",
	}, leadHandlers.ToggleLeadTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_leads",
		Description: "List leads with scores and heat, optionally filtered by status or source",
	}, leadHandlers.ListLeads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_lead",
		Description: "Get a lead with its full notes, tasks, and activity history",
	}, leadHandlers.GetLead)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lead_analytics",
		Description: "Pipeline analytics: summary metrics, status/source breakdowns, 30-day acquisition timeline",
	}, insightHandlers.LeadAnalytics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_duplicate_leads",
		Description: "Find leads sharing the same email address (case-insensitive)",
	}, insightHandlers.FindDuplicateLeads)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_leads_csv",
		Description: "Export all leads as CSV (headline fields only)",
	}, insightHandlers.ExportLeadsCSV)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_leads_csv",
		Description: "Import leads from CSV text; rows need at least name and email",
	}, insightHandlers.ImportLeadsCSV)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
