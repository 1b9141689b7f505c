package analytics

import "math"

// Score combines focus time, session count, and streak into a bounded
// 0-100 composite. The three terms are independently capped at 40, 30,
// and 30 points, so the sum can never leave the range.
func Score(dailyAverageFocusMinutes float64, completedSessions, streakDays int) int {
	if dailyAverageFocusMinutes < 0 {
		dailyAverageFocusMinutes = 0
	}
	if completedSessions < 0 {
		completedSessions = 0
	}
	if streakDays < 0 {
		streakDays = 0
	}

	focus := math.Min(40, dailyAverageFocusMinutes/3)
	sessions := math.Min(30, float64(completedSessions)*2)
	streak := math.Min(30, float64(streakDays)*3)

	return int(focus + sessions + streak)
}
