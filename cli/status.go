// ABOUTME: Status transition CLI commands, single and bulk
// ABOUTME: Also hosts bulk delete, which shares the multi-ID argument shape
package cli

import (
	"flag"
	"fmt"

	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/store"
)

// ChangeStatusCommand moves a lead to a new status. Flags must come
// before the lead ID.
func ChangeStatusCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	status := fs.String("to", "", "New status (new, contacted, converted, lost) (required)")
	_ = fs.Parse(args)

	if *status == "" {
		return fmt.Errorf("--to is required")
	}
	if !models.ValidStatus(models.LeadStatus(*status)) {
		return fmt.Errorf("invalid status: %s", *status)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("lead ID is required")
	}

	lead, err := s.ChangeStatus(fs.Arg(0), models.LeadStatus(*status))
	if err != nil {
		return fmt.Errorf("failed to change status: %w", err)
	}

	fmt.Printf("✓ %s marked as %s\n", lead.Name, lead.Status)
	return nil
}

// BulkStatusCommand moves several leads to a new status at once.
func BulkStatusCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("bulk-status", flag.ExitOnError)
	status := fs.String("to", "", "New status (new, contacted, converted, lost) (required)")
	_ = fs.Parse(args)

	if *status == "" {
		return fmt.Errorf("--to is required")
	}
	if !models.ValidStatus(models.LeadStatus(*status)) {
		return fmt.Errorf("invalid status: %s", *status)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("at least one lead ID is required")
	}

	affected, err := s.BulkChangeStatus(fs.Args(), models.LeadStatus(*status))
	if err != nil {
		return fmt.Errorf("failed to change statuses: %w", err)
	}

	fmt.Printf("✓ %d leads marked as %s\n", affected, *status)
	return nil
}

// BulkDeleteCommand removes several leads at once.
func BulkDeleteCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one lead ID is required")
	}

	affected, err := s.BulkDelete(args)
	if err != nil {
		return fmt.Errorf("failed to delete leads: %w", err)
	}

	fmt.Printf("✓ %d leads deleted\n", affected)
	return nil
}
