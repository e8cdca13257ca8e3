// ABOUTME: Example dataset for the demo account
// ABOUTME: Seeded on first load only; timestamps are relative to the clock
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/leadgen/models"
)

// demoLeads builds the demo account's starter pipeline. Dates are
// expressed as offsets from now so the dashboard and 30-day timeline
// are populated whenever the account is first opened.
func demoLeads(now time.Time) []models.Lead {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	return []models.Lead{
		{
			ID:      uuid.New().String(),
			Name:    "Sarah Johnson",
			Email:   "sarah.johnson@techcorp.com",
			Phone:   "+1 (555) 234-5678",
			Company: "TechCorp Industries",
			Source:  models.SourceWebsite,
			Status:  models.StatusNew,
			Notes: []models.LeadNote{
				{ID: newEntryID(), Content: "Filled out contact form requesting enterprise pricing.", CreatedAt: daysAgo(3)},
			},
			Tasks: []models.LeadTask{},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead created via website", Timestamp: daysAgo(3)},
			},
			CreatedAt: daysAgo(3),
			UpdatedAt: daysAgo(3),
		},
		{
			ID:      uuid.New().String(),
			Name:    "Michael Chen",
			Email:   "m.chen@globalsoft.io",
			Phone:   "+1 (555) 345-6789",
			Company: "GlobalSoft",
			Source:  models.SourceReferral,
			Status:  models.StatusContacted,
			Notes: []models.LeadNote{
				{ID: newEntryID(), Content: "Referred by David Lee. Interested in our analytics suite.", CreatedAt: daysAgo(14)},
				{ID: newEntryID(), Content: "Had initial call, scheduling demo for next week.", CreatedAt: daysAgo(9)},
			},
			Tasks: []models.LeadTask{
				{ID: newEntryID(), Title: "Schedule demo", DueDate: now.AddDate(0, 0, 3), Completed: false, Type: models.TaskMeeting},
			},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead referred by David Lee", Timestamp: daysAgo(14)},
				{ID: newEntryID(), Type: models.ActivityStatusChange, Description: "Status changed to contacted", Timestamp: daysAgo(9)},
			},
			CreatedAt: daysAgo(14),
			UpdatedAt: daysAgo(9),
		},
		{
			ID:      uuid.New().String(),
			Name:    "Emily Rodriguez",
			Email:   "emily.r@startuplab.co",
			Company: "StartupLab",
			Source:  models.SourceSocial,
			Status:  models.StatusConverted,
			Notes: []models.LeadNote{
				{ID: newEntryID(), Content: "Found us on LinkedIn. Signed up for Pro plan.", CreatedAt: daysAgo(24)},
			},
			Tasks: []models.LeadTask{},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead found via social media", Timestamp: daysAgo(24)},
				{ID: newEntryID(), Type: models.ActivityStatusChange, Description: "Status changed to converted", Timestamp: daysAgo(6)},
			},
			CreatedAt: daysAgo(24),
			UpdatedAt: daysAgo(6),
		},
		{
			ID:      uuid.New().String(),
			Name:    "James Whitfield",
			Email:   "jwhitfield@orionmedia.com",
			Phone:   "+1 (555) 456-7890",
			Company: "Orion Media",
			Source:  models.SourceEmail,
			Status:  models.StatusNew,
			Notes:   []models.LeadNote{},
			Tasks: []models.LeadTask{
				{ID: newEntryID(), Title: "Initial email outreach", DueDate: now.AddDate(0, 0, 6), Completed: false, Type: models.TaskEmail},
			},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead added via email campaign", Timestamp: daysAgo(1)},
			},
			CreatedAt: daysAgo(1),
			UpdatedAt: daysAgo(1),
		},
		{
			ID:      uuid.New().String(),
			Name:    "Priya Patel",
			Email:   "priya@designhub.in",
			Company: "DesignHub",
			Source:  models.SourceWebsite,
			Status:  models.StatusContacted,
			Notes: []models.LeadNote{
				{ID: newEntryID(), Content: "Interested in design collaboration tools. Sent pricing sheet.", CreatedAt: daysAgo(5)},
			},
			Tasks: []models.LeadTask{},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead created via website", Timestamp: daysAgo(7)},
				{ID: newEntryID(), Type: models.ActivityStatusChange, Description: "Status changed to contacted", Timestamp: daysAgo(5)},
			},
			CreatedAt: daysAgo(7),
			UpdatedAt: daysAgo(5),
		},
		{
			ID:      uuid.New().String(),
			Name:    "Alex Turner",
			Email:   "alex@cloudnine.dev",
			Company: "CloudNine",
			Source:  models.SourcePhone,
			Status:  models.StatusLost,
			Notes: []models.LeadNote{
				{ID: newEntryID(), Content: "Budget constraints. Decided to go with a competitor.", CreatedAt: daysAgo(19)},
			},
			Tasks: []models.LeadTask{},
			Activities: []models.LeadActivity{
				{ID: newEntryID(), Type: models.ActivityLeadCreated, Description: "Lead added via phone call", Timestamp: daysAgo(29)},
				{ID: newEntryID(), Type: models.ActivityStatusChange, Description: "Status changed to lost", Timestamp: daysAgo(19)},
			},
			CreatedAt: daysAgo(29),
			UpdatedAt: daysAgo(19),
		},
	}
}
