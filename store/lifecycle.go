// ABOUTME: Lead lifecycle operations: create, edit, delete, status changes
// ABOUTME: Every mutation bumps updated_at and writes through to the KV blob
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/harperreed/leadgen/models"
)

// LeadFields carries the caller-editable fields of a lead. Create and
// Update both take the full set; edits replace the fields wholesale.
type LeadFields struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Source  models.LeadSource
	Status  models.LeadStatus
}

// newEntryID generates an id for nested notes, tasks, and activities.
// ULIDs keep the append-only logs lexicographically sortable.
func newEntryID() string {
	return ulid.Make().String()
}

// CreateLead adds a new lead with empty notes and tasks and a single
// lead_created activity. The new lead is prepended so recent leads list
// first.
func (s *Store) CreateLead(fields LeadFields) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	now := s.now()
	lead := models.Lead{
		ID:      uuid.New().String(),
		Name:    fields.Name,
		Email:   fields.Email,
		Phone:   fields.Phone,
		Company: fields.Company,
		Source:  fields.Source,
		Status:  fields.Status,
		Notes:   []models.LeadNote{},
		Tasks:   []models.LeadTask{},
		Activities: []models.LeadActivity{
			{
				ID:          newEntryID(),
				Type:        models.ActivityLeadCreated,
				Description: "Lead added to system",
				Timestamp:   now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.leads = append([]models.Lead{lead}, s.leads...)
	return &lead, s.save()
}

// UpdateLead replaces the lead's editable fields and bumps updated_at.
// Edits are silent: no activity is appended, even when the status field
// changes this way.
func (s *Store) UpdateLead(id string, fields LeadFields) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrLeadNotFound
	}

	lead := &s.leads[i]
	lead.Name = fields.Name
	lead.Email = fields.Email
	lead.Phone = fields.Phone
	lead.Company = fields.Company
	lead.Source = fields.Source
	lead.Status = fields.Status
	lead.UpdatedAt = s.now()

	out := *lead
	return &out, s.save()
}

// DeleteLead removes the lead and everything it owns.
func (s *Store) DeleteLead(id string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	i := s.indexOf(id)
	if i < 0 {
		return ErrLeadNotFound
	}

	s.leads = append(s.leads[:i], s.leads[i+1:]...)
	return s.save()
}

// ChangeStatus sets the lead's status and appends a status_change
// activity. The activity is appended even when the new status equals
// the old one.
func (s *Store) ChangeStatus(id string, status models.LeadStatus) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrLeadNotFound
	}

	s.applyStatusChange(&s.leads[i], status)
	out := s.leads[i]
	return &out, s.save()
}

// BulkChangeStatus applies ChangeStatus to every matching id. Each
// matched lead gets its own activity entry; ids not present are
// skipped. Returns the number of leads changed.
func (s *Store) BulkChangeStatus(ids []string, status models.LeadStatus) (int, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	changed := 0
	for i := range s.leads {
		if !idSet[s.leads[i].ID] {
			continue
		}
		s.applyStatusChange(&s.leads[i], status)
		changed++
	}

	if changed == 0 {
		return 0, nil
	}
	return changed, s.save()
}

// BulkDelete removes every matching lead. Returns the number removed.
func (s *Store) BulkDelete(ids []string) (int, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	kept := s.leads[:0]
	removed := 0
	for _, lead := range s.leads {
		if idSet[lead.ID] {
			removed++
			continue
		}
		kept = append(kept, lead)
	}
	s.leads = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.save()
}

func (s *Store) applyStatusChange(lead *models.Lead, status models.LeadStatus) {
	now := s.now()
	lead.Status = status
	lead.UpdatedAt = now
	lead.Activities = append(lead.Activities, models.LeadActivity{
		ID:          newEntryID(),
		Type:        models.ActivityStatusChange,
		Description: fmt.Sprintf("Status changed to %s", status),
		Timestamp:   now,
	})
}
