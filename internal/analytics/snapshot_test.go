package analytics

import (
	"testing"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
)

func TestBuildSnapshot(t *testing.T) {
	start := mustDay(t, "2025-03-10")
	end := mustDay(t, "2025-03-16")
	today := mustDay(t, "2025-03-14")

	feb1 := time.Date(2025, 2, 1, 6, 0, 0, 0, time.UTC)
	outside := workRecord("2025-02-01", 25, true)
	outside.StartedAt = &feb1

	records := []*domain.SessionRecord{
		workRecord("2025-03-12", 50, true),
		workRecord("2025-03-13", 25, true),
		workRecord("2025-03-14", 25, true),
		breakRecord("2025-03-14", 5),
		outside, // before range: lifetime + streak history only
	}

	snap := BuildSnapshot(records, start, end, today)

	if snap.StartDate != "2025-03-10" || snap.EndDate != "2025-03-16" {
		t.Errorf("range = %s..%s, want 2025-03-10..2025-03-16", snap.StartDate, snap.EndDate)
	}
	if snap.TotalFocusMinutes != 100 {
		t.Errorf("TotalFocusMinutes = %d, want 100", snap.TotalFocusMinutes)
	}
	if snap.CompletedSessionCount != 4 {
		t.Errorf("CompletedSessionCount = %d, want 4", snap.CompletedSessionCount)
	}
	if snap.LifetimeSessionCount != 5 {
		t.Errorf("LifetimeSessionCount = %d, want 5", snap.LifetimeSessionCount)
	}
	// 100 focus minutes over 3 in-range work sessions.
	if snap.AverageSessionMinutes < 33.3 || snap.AverageSessionMinutes > 33.4 {
		t.Errorf("AverageSessionMinutes = %v, want ~33.33", snap.AverageSessionMinutes)
	}
	if snap.CurrentStreakDays != 3 {
		t.Errorf("CurrentStreakDays = %d, want 3", snap.CurrentStreakDays)
	}
	if snap.BestDay == nil || snap.BestDay.Date != "2025-03-12" {
		t.Errorf("BestDay = %+v, want 2025-03-12", snap.BestDay)
	}
	if len(snap.Daily) != 7 {
		t.Errorf("len(Daily) = %d, want 7", len(snap.Daily))
	}
	if snap.Weekly != nil {
		t.Errorf("Weekly = %v, want nil for a 7-day range", snap.Weekly)
	}
	// Breakdown and hourly folds cover the displayed range only; the
	// February record contributes to neither.
	if snap.SessionTypeBreakdown[domain.SessionTypeWork] != 3 {
		t.Errorf("work breakdown = %d, want 3", snap.SessionTypeBreakdown[domain.SessionTypeWork])
	}
	if len(snap.HourlyDistribution) != 0 {
		t.Errorf("HourlyDistribution = %v, want empty (only out-of-range record carries a start time)", snap.HourlyDistribution)
	}

	// daily average 100/7 ≈ 14.3 -> 4 pts; 4 sessions -> 8 pts; 3-day streak -> 9 pts.
	if snap.ProductivityScore != 21 {
		t.Errorf("ProductivityScore = %d, want 21", snap.ProductivityScore)
	}
}

func TestBuildSnapshotEmpty(t *testing.T) {
	start := mustDay(t, "2025-03-10")
	end := mustDay(t, "2025-03-16")
	today := mustDay(t, "2025-03-14")

	snap := BuildSnapshot(nil, start, end, today)

	if snap.TotalFocusMinutes != 0 || snap.CompletedSessionCount != 0 {
		t.Error("empty record set should produce zero totals")
	}
	if snap.AverageSessionMinutes != 0 {
		t.Errorf("AverageSessionMinutes = %v, want 0 (no divide-by-zero)", snap.AverageSessionMinutes)
	}
	if snap.ProductivityScore != 0 {
		t.Errorf("ProductivityScore = %d, want 0", snap.ProductivityScore)
	}
	if snap.BestDay != nil {
		t.Errorf("BestDay = %+v, want nil", snap.BestDay)
	}
	if len(snap.Daily) != 7 {
		t.Errorf("len(Daily) = %d, want 7 zero-filled days", len(snap.Daily))
	}
}

func TestBuildSnapshotMalformedDates(t *testing.T) {
	start := mustDay(t, "2025-03-10")
	end := mustDay(t, "2025-03-16")
	today := mustDay(t, "2025-03-14")

	records := []*domain.SessionRecord{
		workRecord("03/14/2025", 25, true), // wrong layout: excluded from buckets
		workRecord("2025-03-14", 25, true),
	}

	snap := BuildSnapshot(records, start, end, today)

	if snap.TotalFocusMinutes != 25 {
		t.Errorf("TotalFocusMinutes = %d, want 25", snap.TotalFocusMinutes)
	}
	// Malformed dates still count toward the lifetime total.
	if snap.LifetimeSessionCount != 2 {
		t.Errorf("LifetimeSessionCount = %d, want 2", snap.LifetimeSessionCount)
	}
	if snap.CurrentStreakDays != 1 {
		t.Errorf("CurrentStreakDays = %d, want 1", snap.CurrentStreakDays)
	}
}
