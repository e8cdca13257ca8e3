// ABOUTME: Note and task CLI commands
// ABOUTME: Adds notes/tasks to a lead and toggles task completion
package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/store"
)

// AddNoteCommand appends a note to a lead. Flags must come before the
// lead ID.
func AddNoteCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-note", flag.ExitOnError)
	content := fs.String("content", "", "Note text (required)")
	_ = fs.Parse(args)

	if *content == "" {
		return fmt.Errorf("--content is required")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("lead ID is required")
	}

	lead, err := s.AddNote(fs.Arg(0), *content)
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	fmt.Printf("✓ Note added to %s (%d notes)\n", lead.Name, len(lead.Notes))
	return nil
}

// AddTaskCommand appends a follow-up task to a lead. Flags must come
// before the lead ID.
func AddTaskCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	taskType := fs.String("type", "todo", "Task type (call, email, meeting, todo)")
	due := fs.String("due", "", "Due date YYYY-MM-DD (default: one week out)")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if !models.ValidTaskType(models.TaskType(*taskType)) {
		return fmt.Errorf("invalid type: %s", *taskType)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("lead ID is required")
	}

	dueDate := s.Now().AddDate(0, 0, 7)
	if *due != "" {
		parsed, err := time.Parse(time.DateOnly, *due)
		if err != nil {
			return fmt.Errorf("invalid due date (use YYYY-MM-DD): %w", err)
		}
		dueDate = parsed
	}

	lead, err := s.AddTask(fs.Arg(0), *title, models.TaskType(*taskType), dueDate)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	task := lead.Tasks[len(lead.Tasks)-1]
	fmt.Printf("✓ Task added to %s: %s (ID: %s, due %s)\n",
		lead.Name, task.Title, task.ID, task.DueDate.Format(time.DateOnly))
	return nil
}

// ToggleTaskCommand flips a task's completed flag.
func ToggleTaskCommand(s *store.Store, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: toggle-task <lead-id> <task-id>")
	}

	lead, err := s.ToggleTask(args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	for _, task := range lead.Tasks {
		if task.ID == args[1] {
			state := "reopened"
			if task.Completed {
				state = "completed"
			}
			fmt.Printf("✓ Task %s: %s\n", state, task.Title)
			break
		}
	}
	return nil
}
