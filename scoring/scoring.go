// ABOUTME: Lead scoring heuristic and heat categorization
// ABOUTME: Pure functions; callers pass the current time for recency
package scoring

import (
	"time"

	"github.com/harperreed/leadgen/models"
)

// Heat buckets a score into a temperature tier.
type Heat string

const (
	HeatHot  Heat = "hot"
	HeatWarm Heat = "warm"
	HeatCold Heat = "cold"
)

// Score calculates a lead score in [0, 100]:
//
//	base 20
//	status: contacted +20, converted +50, lost -30
//	+5 per note
//	+10 per completed task
//	+5 per activity within the last 7 days
func Score(lead models.Lead, now time.Time) int {
	score := 20

	switch lead.Status {
	case models.StatusContacted:
		score += 20
	case models.StatusConverted:
		score += 50
	case models.StatusLost:
		score -= 30
	}

	score += len(lead.Notes) * 5
	score += lead.CompletedTaskCount() * 10

	recent := 0
	for _, a := range lead.Activities {
		if daysBetween(now, a.Timestamp) <= 7 {
			recent++
		}
	}
	score += recent * 5

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// HeatFor maps a score onto its tier: hot ≥70, warm ≥40, else cold.
func HeatFor(score int) Heat {
	if score >= 70 {
		return HeatHot
	}
	if score >= 40 {
		return HeatWarm
	}
	return HeatCold
}

// daysBetween truncates toward zero, matching calendar-day arithmetic
// on elapsed time.
func daysBetween(now, t time.Time) int {
	return int(now.Sub(t).Hours() / 24)
}
