// ABOUTME: Lead CLI commands
// ABOUTME: Human-friendly commands for adding, listing, editing, and deleting leads
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/leadgen/models"
	"github.com/harperreed/leadgen/scoring"
	"github.com/harperreed/leadgen/store"
)

// AddLeadCommand adds a new lead.
func AddLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "Lead name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	source := fs.String("source", "other", "Lead source (website, referral, social, email, phone, other)")
	status := fs.String("status", "new", "Lead status (new, contacted, converted, lost)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	if !models.ValidSource(models.LeadSource(*source)) {
		return fmt.Errorf("invalid source: %s", *source)
	}
	if !models.ValidStatus(models.LeadStatus(*status)) {
		return fmt.Errorf("invalid status: %s", *status)
	}

	lead, err := s.CreateLead(store.LeadFields{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Company: *company,
		Source:  models.LeadSource(*source),
		Status:  models.LeadStatus(*status),
	})
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s (ID: %s)\n", lead.Name, lead.ID)
	fmt.Printf("  Email: %s\n", lead.Email)
	if lead.Company != "" {
		fmt.Printf("  Company: %s\n", lead.Company)
	}
	fmt.Printf("  Source: %s  Status: %s\n", lead.Source, lead.Status)

	return nil
}

// ListLeadsCommand lists leads with their scores and heat.
func ListLeadsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	source := fs.String("source", "", "Filter by source")
	_ = fs.Parse(args)

	leads, err := s.Leads()
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	now := s.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tSOURCE\tSTATUS\tSCORE\tHEAT")

	shown := 0
	for _, lead := range leads {
		if *status != "" && string(lead.Status) != *status {
			continue
		}
		if *source != "" && string(lead.Source) != *source {
			continue
		}
		score := scoring.Score(lead, now)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			lead.ID, lead.Name, lead.Email, lead.Company,
			lead.Source, lead.Status, score, scoring.HeatFor(score))
		shown++
	}
	w.Flush()

	fmt.Printf("\n%d leads\n", shown)
	return nil
}

// UpdateLeadCommand updates a lead's fields. Flags left unset keep the
// lead's current values. Flags must come before the lead ID.
func UpdateLeadCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "Lead name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	source := fs.String("source", "", "Lead source")
	status := fs.String("status", "", "Lead status")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("lead ID is required")
	}
	id := fs.Arg(0)

	lead, err := s.Get(id)
	if err != nil {
		return fmt.Errorf("failed to find lead: %w", err)
	}

	fields := store.LeadFields{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Company: lead.Company,
		Source:  lead.Source,
		Status:  lead.Status,
	}
	if *name != "" {
		fields.Name = *name
	}
	if *email != "" {
		fields.Email = *email
	}
	if *phone != "" {
		fields.Phone = *phone
	}
	if *company != "" {
		fields.Company = *company
	}
	if *source != "" {
		if !models.ValidSource(models.LeadSource(*source)) {
			return fmt.Errorf("invalid source: %s", *source)
		}
		fields.Source = models.LeadSource(*source)
	}
	if *status != "" {
		if !models.ValidStatus(models.LeadStatus(*status)) {
			return fmt.Errorf("invalid status: %s", *status)
		}
		fields.Status = models.LeadStatus(*status)
	}

	updated, err := s.UpdateLead(id, fields)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	fmt.Printf("✓ Lead updated: %s (ID: %s)\n", updated.Name, updated.ID)
	return nil
}

// DeleteLeadCommand deletes a lead and everything it owns.
func DeleteLeadCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("lead ID is required")
	}
	id := args[0]

	if err := s.DeleteLead(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	fmt.Printf("✓ Lead deleted: %s\n", id)
	return nil
}
