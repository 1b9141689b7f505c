package analytics

import (
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
)

// BuildSnapshot computes the full derived view for [start, end] from an
// unordered record set. Records with an unparseable date key are kept
// out of every date bucket but still counted in the lifetime total;
// all ratio math returns 0 instead of dividing by zero.
func BuildSnapshot(records []*domain.SessionRecord, start, end, today time.Time) *domain.AnalyticsSnapshot {
	daily := DailyStats(records, start, end, today)

	// The record set may reach further back than [start, end] so the
	// streak walks see their history; everything except the streaks and
	// the lifetime total stays clamped to the range.
	inRange := make(map[string]bool, len(daily))
	for _, d := range daily {
		inRange[d.Date] = true
	}
	ranged := make([]*domain.SessionRecord, 0, len(records))
	for _, r := range records {
		if inRange[r.Date] {
			ranged = append(ranged, r)
		}
	}

	snap := &domain.AnalyticsSnapshot{
		StartDate:            domain.DateKey(start),
		EndDate:              domain.DateKey(end),
		Daily:                daily,
		Weekly:               WeeklyStats(records, start, end),
		CurrentStreakDays:    CurrentStreak(records, today),
		LongestStreakDays:    LongestStreak(records),
		BestDay:              FindBestDay(daily),
		SessionTypeBreakdown: TypeBreakdown(ranged),
		HourlyDistribution:   HourlyDistribution(ranged),
	}

	for _, d := range daily {
		snap.TotalFocusMinutes += d.FocusMinutes
		snap.CompletedSessionCount += d.SessionCount
	}

	workCount := 0
	for _, r := range ranged {
		if r.Completed && r.IsWork() {
			workCount++
		}
	}
	for _, r := range records {
		if r.Completed {
			snap.LifetimeSessionCount++
		}
	}

	if workCount > 0 {
		snap.AverageSessionMinutes = float64(snap.TotalFocusMinutes) / float64(workCount)
	}

	dailyAverage := float64(snap.TotalFocusMinutes) / float64(rangeDays(start, end))
	snap.ProductivityScore = Score(dailyAverage, snap.CompletedSessionCount, snap.CurrentStreakDays)

	return snap
}
