// ABOUTME: Data models for lead tracking entities
// ABOUTME: Defines Lead, LeadNote, LeadTask, LeadActivity structs and their enums
package models

import "time"

// LeadStatus is a lead's position in the pipeline. Any status may
// transition to any other status.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusConverted LeadStatus = "converted"
	StatusLost      LeadStatus = "lost"
)

// Statuses returns all statuses in pipeline order.
func Statuses() []LeadStatus {
	return []LeadStatus{StatusNew, StatusContacted, StatusConverted, StatusLost}
}

// ValidStatus reports whether s is a known lead status.
func ValidStatus(s LeadStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusLost:
		return true
	}
	return false
}

// LeadSource records where a lead came from.
type LeadSource string

const (
	SourceWebsite  LeadSource = "website"
	SourceReferral LeadSource = "referral"
	SourceSocial   LeadSource = "social"
	SourceEmail    LeadSource = "email"
	SourcePhone    LeadSource = "phone"
	SourceOther    LeadSource = "other"
)

// Sources returns all sources in display order.
func Sources() []LeadSource {
	return []LeadSource{SourceWebsite, SourceReferral, SourceSocial, SourceEmail, SourcePhone, SourceOther}
}

// ValidSource reports whether s is a known lead source.
func ValidSource(s LeadSource) bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceSocial, SourceEmail, SourcePhone, SourceOther:
		return true
	}
	return false
}

// TaskType categorizes a follow-up task.
type TaskType string

const (
	TaskCall    TaskType = "call"
	TaskEmail   TaskType = "email"
	TaskMeeting TaskType = "meeting"
	TaskTodo    TaskType = "todo"
)

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskCall, TaskEmail, TaskMeeting, TaskTodo:
		return true
	}
	return false
}

// ActivityType identifies an entry in a lead's append-only history.
type ActivityType string

const (
	ActivityLeadCreated   ActivityType = "lead_created"
	ActivityNoteAdded     ActivityType = "note_added"
	ActivityStatusChange  ActivityType = "status_change"
	ActivityTaskCompleted ActivityType = "task_completed"
)

// LeadNote is a free-text note. Notes are immutable once created and are
// never edited or deleted individually.
type LeadNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadTask is a follow-up task. Only the completed flag is mutable.
type LeadTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"due_date"`
	Completed bool      `json:"completed"`
	Type      TaskType  `json:"type"`
}

// LeadActivity is one entry in a lead's history log. The log is
// append-only; entries are never mutated or removed.
type LeadActivity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

// Lead is the root record. A lead owns its notes, tasks, and activities;
// deleting the lead destroys all of them.
type Lead struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone,omitempty"`
	Company    string         `json:"company,omitempty"`
	Source     LeadSource     `json:"source"`
	Status     LeadStatus     `json:"status"`
	Notes      []LeadNote     `json:"notes"`
	Tasks      []LeadTask     `json:"tasks"`
	Activities []LeadActivity `json:"activities"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CompletedTaskCount returns the number of completed tasks.
func (l *Lead) CompletedTaskCount() int {
	count := 0
	for _, t := range l.Tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

// LeadImport is a partial lead parsed from a CSV row. Only directly
// matched columns are populated; the store completes the record (id,
// timestamps, initial activity) on insertion.
type LeadImport struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Source  string `json:"source,omitempty"`
	Status  string `json:"status,omitempty"`
}
