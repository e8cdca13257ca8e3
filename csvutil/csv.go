// ABOUTME: CSV export and import for leads
// ABOUTME: Export is a lossy headline backup; import parses partial records
package csvutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/leadgen/models"
)

// exportHeader is the fixed export column order. Import matches headers
// case-insensitively, so round-tripping our own files works, but any
// CSV with name/email columns is accepted.
const exportHeader = "ID,Name,Email,Phone,Company,Source,Status,Notes Count,Created At"

// ExportLeads serializes leads to CSV. Name and Company are always
// quoted with doubled-quote escaping. Notes Count carries the note
// count only; notes, tasks, and activities are not exported.
func ExportLeads(leads []models.Lead) string {
	lines := make([]string, 0, len(leads)+1)
	lines = append(lines, exportHeader)

	for _, lead := range leads {
		lines = append(lines, strings.Join([]string{
			lead.ID,
			quote(lead.Name),
			lead.Email,
			lead.Phone,
			quote(lead.Company),
			string(lead.Source),
			string(lead.Status),
			fmt.Sprintf("%d", len(lead.Notes)),
			lead.CreatedAt.UTC().Format(time.RFC3339),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ParseLeads parses a CSV export into partial lead records. The first
// line is the header, matched case-insensitively. A record is kept only
// when both name and email are non-empty; everything else is dropped
// silently. Lines split on raw newlines before tokenizing, so embedded
// newlines inside quoted fields are not supported.
func ParseLeads(text string) []models.LeadImport {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []models.LeadImport
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		values := splitLine(line)
		var rec models.LeadImport
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			value := values[i]
			switch header {
			case "name":
				rec.Name = value
			case "email":
				rec.Email = value
			case "phone":
				rec.Phone = value
			case "company":
				rec.Company = value
			case "source":
				rec.Source = value
			case "status":
				rec.Status = value
			}
		}

		if rec.Name != "" && rec.Email != "" {
			records = append(records, rec)
		}
	}

	return records
}

// splitLine tokenizes one CSV line. A field may contain commas when
// quoted; surrounding quotes are stripped and doubled quotes collapse
// to a literal quote.
func splitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}
