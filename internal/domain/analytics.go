package domain

// DailyStat aggregates completed sessions for one calendar day.
// Every day of a requested range gets a stat, even with no records.
type DailyStat struct {
	Date         string
	DayName      string
	FocusMinutes int
	SessionCount int
	IsToday      bool
	IsWeekend    bool
}

// WeeklyProgress aggregates completed work for one Monday-start week of
// a requested range. ImprovementPct is relative to the preceding week.
type WeeklyProgress struct {
	WeekLabel      string
	FocusMinutes   int
	SessionCount   int
	ImprovementPct float64
}

// BestDay is the day with the most focus minutes in a snapshot range.
type BestDay struct {
	Date         string
	FocusMinutes int
}

// AnalyticsSnapshot is the derived view over a date range of session
// records. It is recomputed on demand and never persisted.
type AnalyticsSnapshot struct {
	StartDate string
	EndDate   string

	Daily  []DailyStat
	Weekly []WeeklyProgress

	CurrentStreakDays int
	LongestStreakDays int

	ProductivityScore     int
	TotalFocusMinutes     int
	CompletedSessionCount int
	AverageSessionMinutes float64
	BestDay               *BestDay

	SessionTypeBreakdown map[SessionType]int
	HourlyDistribution   map[int]int

	// LifetimeSessionCount counts every completed record seen, including
	// ones whose date key could not be bucketed into the range.
	LifetimeSessionCount int
}
