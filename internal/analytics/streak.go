// Package analytics derives streaks, daily/weekly rollups, and the
// productivity score from a raw, unordered set of session records.
// Everything here is pure: same records and clock in, same numbers out.
package analytics

import (
	"sort"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
)

// qualifyingDates collects the distinct date keys that have at least one
// completed work record. Records with unparseable dates are ignored.
func qualifyingDates(records []*domain.SessionRecord) map[string]bool {
	dates := make(map[string]bool)
	for _, r := range records {
		if !r.Completed || !r.IsWork() {
			continue
		}
		if _, err := domain.ParseDateKey(r.Date); err != nil {
			continue
		}
		dates[r.Date] = true
	}
	return dates
}

// CurrentStreak walks backward day-by-day from today (inclusive) and
// counts consecutive days with a completed work session. Today having
// no sessions yet neither counts nor breaks the streak; the scan stops
// at the first gap on any earlier day.
func CurrentStreak(records []*domain.SessionRecord, today time.Time) int {
	dates := qualifyingDates(records)
	if len(dates) == 0 {
		return 0
	}

	streak := 0
	day := today
	for i := 0; ; i++ {
		if dates[domain.DateKey(day)] {
			streak++
		} else if i > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak scans the whole history for the longest run of
// consecutive qualifying days. A gap of exactly one calendar day
// continues a run; anything else resets it.
func LongestStreak(records []*domain.SessionRecord) int {
	dates := qualifyingDates(records)
	if len(dates) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(dates))
	for key := range dates {
		day, err := domain.ParseDateKey(key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
