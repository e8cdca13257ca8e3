// ABOUTME: Task operations for leads
// ABOUTME: Tasks toggle completion; only incomplete→complete logs an activity
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/leadgen/models"
)

// AddTask appends an incomplete task to the lead and bumps updated_at.
// No activity is logged for task creation.
func (s *Store) AddTask(leadID, title string, taskType models.TaskType, dueDate time.Time) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	i := s.indexOf(leadID)
	if i < 0 {
		return nil, ErrLeadNotFound
	}

	lead := &s.leads[i]
	lead.Tasks = append(lead.Tasks, models.LeadTask{
		ID:        newEntryID(),
		Title:     title,
		DueDate:   dueDate,
		Completed: false,
		Type:      taskType,
	})
	lead.UpdatedAt = s.now()

	out := *lead
	return &out, s.save()
}

// ToggleTask flips the task's completed flag. Completing a task logs a
// task_completed activity; un-completing logs nothing. updated_at is
// bumped either way.
func (s *Store) ToggleTask(leadID, taskID string) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	i := s.indexOf(leadID)
	if i < 0 {
		return nil, ErrLeadNotFound
	}

	lead := &s.leads[i]
	taskIdx := -1
	for j := range lead.Tasks {
		if lead.Tasks[j].ID == taskID {
			taskIdx = j
			break
		}
	}
	if taskIdx < 0 {
		return nil, ErrTaskNotFound
	}

	now := s.now()
	task := &lead.Tasks[taskIdx]
	task.Completed = !task.Completed

	if task.Completed {
		lead.Activities = append(lead.Activities, models.LeadActivity{
			ID:          newEntryID(),
			Type:        models.ActivityTaskCompleted,
			Description: fmt.Sprintf("Completed task: %s", task.Title),
			Timestamp:   now,
		})
	}
	lead.UpdatedAt = now

	out := *lead
	return &out, s.save()
}
