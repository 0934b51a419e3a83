// Package analytics derives headline metrics and value distributions from a
// record set, driven entirely by the entity's display configuration.
package analytics

import (
	"fmt"
	"time"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// RecentWindow is how far back a record's created_at may lie to count as
// recent.
const RecentWindow = 30 * 24 * time.Hour

// Status values treated as in-flight for the active count.
var activeStatuses = map[string]bool{
	"Active":      true,
	"Open":        true,
	"In Progress": true,
}

// Status values treated as finished for the completion rate.
var completedStatuses = map[string]bool{
	"Completed": true,
	"Closed":    true,
	"Done":      true,
}

// Summary holds the derived metrics for one entity's record set.
type Summary struct {
	// Total is the record count.
	Total int `json:"total"`
	// ActiveLike counts records whose primary filter field holds an
	// in-flight status. Without a configured primary filter it equals Total.
	ActiveLike int `json:"active"`
	// Recent counts records created inside RecentWindow. When no record
	// carries a parseable created_at it falls back to min(Total, 10).
	Recent int `json:"recent"`
	// CompletionRate is completed-like records over Total as a percentage.
	// Without a configured primary filter it is a fixed 100.
	CompletionRate float64 `json:"completion_rate"`
	// Distribution is the value count over the primary filter field,
	// nil when no primary filter is configured.
	Distribution map[string]int `json:"distribution,omitempty"`
	// Trend is the value count over the secondary filter field when
	// configured, otherwise created_at bucketed by day.
	Trend map[string]int `json:"trend,omitempty"`
}

// Summarize computes the Summary for records under the given display
// configuration.
func Summarize(records []entity.Record, display entity.DisplayConfig) Summary {
	s := Summary{Total: len(records)}

	if display.PrimaryFilter != nil {
		field := display.PrimaryFilter.Field
		completed := 0
		s.Distribution = valueCounts(records, field)
		for _, r := range records {
			v := stringify(r[field])
			if activeStatuses[v] {
				s.ActiveLike++
			}
			if completedStatuses[v] {
				completed++
			}
		}
		if s.Total > 0 {
			s.CompletionRate = float64(completed) / float64(s.Total) * 100
		}
	} else {
		s.ActiveLike = s.Total
		s.CompletionRate = 100
	}

	s.Recent = recentCount(records, s.Total)

	if display.SecondaryFilter != nil {
		s.Trend = valueCounts(records, display.SecondaryFilter.Field)
	} else {
		s.Trend = dayBuckets(records)
	}

	return s
}

// recentCount counts records created inside RecentWindow. Records without a
// parseable created_at are ignored; when none parses at all the count falls
// back to min(total, 10).
func recentCount(records []entity.Record, total int) int {
	cutoff := time.Now().Add(-RecentWindow)
	count := 0
	parsedAny := false
	for _, r := range records {
		created := r.CreatedAt()
		if created.IsZero() {
			continue
		}
		parsedAny = true
		if created.After(cutoff) {
			count++
		}
	}
	if !parsedAny {
		if total < 10 {
			return total
		}
		return 10
	}
	return count
}

// valueCounts tallies the distinct observed values of field. Absent and
// empty values are skipped.
func valueCounts(records []entity.Record, field string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		v := stringify(r[field])
		if v == "" {
			continue
		}
		counts[v]++
	}
	return counts
}

// dayBuckets tallies records by created_at calendar day.
func dayBuckets(records []entity.Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		created := r.CreatedAt()
		if created.IsZero() {
			continue
		}
		counts[created.Format("2006-01-02")]++
	}
	return counts
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
