// ABOUTME: Duplicate lead detection by normalized email
// ABOUTME: Read-only diagnostic; deletion happens through the ordinary operations
package dedup

import (
	"sort"
	"strings"

	"github.com/harperreed/leadgen/models"
)

// DuplicateGroup is a cluster of leads sharing the same normalized
// email address.
type DuplicateGroup struct {
	Email string
	Leads []models.Lead
}

// FindDuplicates groups leads by lower-cased, trimmed email and reports
// groups with two or more members. Blank emails never group. Members
// keep their original order; groups are sorted by email for stable
// output.
func FindDuplicates(leads []models.Lead) []DuplicateGroup {
	byEmail := make(map[string][]models.Lead)
	for _, lead := range leads {
		email := strings.ToLower(strings.TrimSpace(lead.Email))
		if email == "" {
			continue
		}
		byEmail[email] = append(byEmail[email], lead)
	}

	var groups []DuplicateGroup
	for email, members := range byEmail {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{Email: email, Leads: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Email < groups[j].Email
	})
	return groups
}
