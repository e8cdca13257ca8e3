// ABOUTME: CSV export and import CLI commands
// ABOUTME: Export writes a headline backup; import restores partial records
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/leadgen/csvutil"
	"github.com/harperreed/leadgen/store"
)

// ExportCommand writes the lead list as CSV to a file or stdout.
// Notes, tasks, and activities are not included; the export is a
// headline-field backup only.
func ExportCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	leads, err := s.Leads()
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	csv := csvutil.ExportLeads(leads)
	if *output == "" {
		fmt.Println(csv)
		return nil
	}

	if err := os.WriteFile(*output, []byte(csv+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✓ Exported %d leads to %s\n", len(leads), *output)
	return nil
}

// ImportCommand reads a CSV file and appends its valid rows as new
// leads. Rows without both name and email are skipped.
func ImportCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: import <file.csv>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	records := csvutil.ParseLeads(string(raw))
	if len(records) == 0 {
		return fmt.Errorf("could not parse any valid leads from CSV")
	}

	imported, err := s.ImportLeads(records)
	if err != nil {
		return fmt.Errorf("failed to import leads: %w", err)
	}

	fmt.Printf("✓ Imported %d leads\n", imported)
	return nil
}
