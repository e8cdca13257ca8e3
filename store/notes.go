// ABOUTME: Note operations for leads
// ABOUTME: Notes are append-only; adding one also logs a note_added activity
package store

import (
	"github.com/harperreed/leadgen/models"
)

// AddNote appends a note to the lead and logs a note_added activity.
// Notes are never edited or deleted afterwards.
func (s *Store) AddNote(leadID, content string) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	i := s.indexOf(leadID)
	if i < 0 {
		return nil, ErrLeadNotFound
	}

	now := s.now()
	lead := &s.leads[i]
	lead.Notes = append(lead.Notes, models.LeadNote{
		ID:        newEntryID(),
		Content:   content,
		CreatedAt: now,
	})
	lead.Activities = append(lead.Activities, models.LeadActivity{
		ID:          newEntryID(),
		Type:        models.ActivityNoteAdded,
		Description: "New note added",
		Timestamp:   now,
	})
	lead.UpdatedAt = now

	out := *lead
	return &out, s.save()
}
