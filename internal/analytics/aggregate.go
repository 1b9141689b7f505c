package analytics

import (
	"fmt"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
)

// startOfDay truncates an instant to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rangeDays returns the number of calendar days in the closed range
// [start, end], never less than 1. The dates are diffed in UTC so a
// DST transition inside the range cannot drop a day.
func rangeDays(start, end time.Time) int {
	s, e := startOfDay(start), startOfDay(end)
	su := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	eu := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	days := int(eu.Sub(su).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// DailyStats buckets completed records into one zero-filled stat per
// calendar day in [start, end]. Focus minutes sum completed work
// durations; the session count covers completed records of any type.
func DailyStats(records []*domain.SessionRecord, start, end, today time.Time) []domain.DailyStat {
	first := startOfDay(start)
	days := rangeDays(start, end)
	todayKey := domain.DateKey(today)

	stats := make([]domain.DailyStat, 0, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		key := domain.DateKey(day)
		weekday := day.Weekday()
		stats = append(stats, domain.DailyStat{
			Date:      key,
			DayName:   day.Format("Mon"),
			IsToday:   key == todayKey,
			IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
		})
		index[key] = i
	}

	for _, r := range records {
		if !r.Completed {
			continue
		}
		i, ok := index[r.Date]
		if !ok {
			continue
		}
		stats[i].SessionCount++
		if r.IsWork() {
			stats[i].FocusMinutes += r.DurationMinutes
		}
	}
	return stats
}

// WeeklyStats rolls completed work into Monday-start weeks. The first
// week is clamped to the range's own start rather than pre-aligned to
// the calendar outside it. Ranges of 7 days or fewer yield no weeks.
func WeeklyStats(records []*domain.SessionRecord, start, end time.Time) []domain.WeeklyProgress {
	if rangeDays(start, end) <= 7 {
		return nil
	}

	focusByDate := make(map[string]int)
	countByDate := make(map[string]int)
	for _, r := range records {
		if !r.Completed {
			continue
		}
		countByDate[r.Date]++
		if r.IsWork() {
			focusByDate[r.Date] += r.DurationMinutes
		}
	}

	var weeks []domain.WeeklyProgress
	last := startOfDay(end)
	cursor := startOfDay(start)
	for !cursor.After(last) {
		weekEnd := nextMonday(cursor).AddDate(0, 0, -1)
		if weekEnd.After(last) {
			weekEnd = last
		}

		week := domain.WeeklyProgress{
			WeekLabel: fmt.Sprintf("Week of %s", cursor.Format("Jan 2")),
		}
		for day := cursor; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
			key := domain.DateKey(day)
			week.FocusMinutes += focusByDate[key]
			week.SessionCount += countByDate[key]
		}

		if n := len(weeks); n > 0 {
			prev := weeks[n-1].FocusMinutes
			if prev > 0 {
				week.ImprovementPct = float64(week.FocusMinutes-prev) / float64(prev) * 100
			}
		}
		weeks = append(weeks, week)
		cursor = weekEnd.AddDate(0, 0, 1)
	}
	return weeks
}

// nextMonday returns the first Monday strictly after the given day,
// except that a Monday input advances a full week.
func nextMonday(day time.Time) time.Time {
	offset := (int(time.Monday) - int(day.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return day.AddDate(0, 0, offset)
}

// HourlyDistribution counts completed records by the hour-of-day of
// their start instant. Legacy records without one are left out.
func HourlyDistribution(records []*domain.SessionRecord) map[int]int {
	hours := make(map[int]int)
	for _, r := range records {
		if !r.Completed || r.StartedAt == nil {
			continue
		}
		hours[r.StartedAt.Hour()]++
	}
	return hours
}

// TypeBreakdown counts completed records by session type.
func TypeBreakdown(records []*domain.SessionRecord) map[domain.SessionType]int {
	breakdown := make(map[domain.SessionType]int)
	for _, r := range records {
		if !r.Completed {
			continue
		}
		breakdown[r.Type]++
	}
	return breakdown
}

// FindBestDay picks the day with the most focus minutes, or nil when
// the range saw no focus time at all.
func FindBestDay(daily []domain.DailyStat) *domain.BestDay {
	var best *domain.BestDay
	for _, d := range daily {
		if d.FocusMinutes > 0 && (best == nil || d.FocusMinutes > best.FocusMinutes) {
			best = &domain.BestDay{Date: d.Date, FocusMinutes: d.FocusMinutes}
		}
	}
	return best
}
