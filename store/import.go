// ABOUTME: Completes partial CSV records into full leads
// ABOUTME: Generates ids, timestamps, and the initial lead_created activity
package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/harperreed/leadgen/models"
)

// ImportLeads completes parsed CSV records into full leads and appends
// them to the store. Unknown or blank sources default to "other",
// unknown or blank statuses to "new". Returns the number imported; an
// empty record set writes nothing.
func (s *Store) ImportLeads(records []models.LeadImport) (int, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	now := s.now()
	for _, rec := range records {
		source := models.LeadSource(strings.ToLower(strings.TrimSpace(rec.Source)))
		if !models.ValidSource(source) {
			source = models.SourceOther
		}
		status := models.LeadStatus(strings.ToLower(strings.TrimSpace(rec.Status)))
		if !models.ValidStatus(status) {
			status = models.StatusNew
		}

		s.leads = append(s.leads, models.Lead{
			ID:      uuid.New().String(),
			Name:    rec.Name,
			Email:   rec.Email,
			Phone:   rec.Phone,
			Company: rec.Company,
			Source:  source,
			Status:  status,
			Notes:   []models.LeadNote{},
			Tasks:   []models.LeadTask{},
			Activities: []models.LeadActivity{
				{
					ID:          newEntryID(),
					Type:        models.ActivityLeadCreated,
					Description: "Imported via CSV",
					Timestamp:   now,
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return len(records), s.save()
}
