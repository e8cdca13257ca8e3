// ABOUTME: Pipeline analytics aggregations over a lead list
// ABOUTME: Pure functions recomputed on every read; no caching
package analytics

import (
	"math"
	"time"

	"github.com/harperreed/leadgen/models"
)

// Summary holds the headline pipeline metrics.
type Summary struct {
	TotalLeads     int
	ConversionRate float64 // percent, one decimal place
	ActivePipeline int     // new + contacted
	LostLeads      int
}

// TimelinePoint is one calendar day in the acquisition timeline.
type TimelinePoint struct {
	Day   time.Time // midnight UTC
	Count int
}

// StatusBreakdown counts leads per status. Only statuses present in the
// list appear as keys.
func StatusBreakdown(leads []models.Lead) map[models.LeadStatus]int {
	counts := make(map[models.LeadStatus]int)
	for _, lead := range leads {
		counts[lead.Status]++
	}
	return counts
}

// SourceBreakdown counts leads per source. Only sources present in the
// list appear as keys.
func SourceBreakdown(leads []models.Lead) map[models.LeadSource]int {
	counts := make(map[models.LeadSource]int)
	for _, lead := range leads {
		counts[lead.Source]++
	}
	return counts
}

// AcquisitionTimeline buckets lead creation by UTC calendar day over
// the 30 days ending today. The result always has exactly 30 entries,
// oldest first, with zero-count days filled in.
func AcquisitionTimeline(leads []models.Lead, now time.Time) []TimelinePoint {
	counts := make(map[string]int)
	for _, lead := range leads {
		counts[lead.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	today := now.UTC().Truncate(24 * time.Hour)
	points := make([]TimelinePoint, 0, 30)
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, TimelinePoint{
			Day:   day,
			Count: counts[day.Format(time.DateOnly)],
		})
	}
	return points
}

// Summarize computes the headline metrics. Conversion rate is
// converted/total as a percentage rounded to one decimal place, zero
// for an empty list.
func Summarize(leads []models.Lead) Summary {
	s := Summary{TotalLeads: len(leads)}

	converted := 0
	for _, lead := range leads {
		switch lead.Status {
		case models.StatusConverted:
			converted++
		case models.StatusNew, models.StatusContacted:
			s.ActivePipeline++
		case models.StatusLost:
			s.LostLeads++
		}
	}

	if s.TotalLeads > 0 {
		rate := float64(converted) / float64(s.TotalLeads) * 100
		s.ConversionRate = math.Round(rate*10) / 10
	}
	return s
}
