package analytics

import (
	"fmt"

	"github.com/nihzaa/focusflow/internal/domain"
)

// maxInsights bounds the list surfaced to the user.
const maxInsights = 4

// Insights turns a snapshot into a short, ordered list of qualitative
// observations. The rules emit at most one message per category in
// priority order: score band, streak band, session-length band, best
// day. No randomness: the same snapshot always yields the same list.
func Insights(s *domain.AnalyticsSnapshot) []string {
	var out []string

	switch {
	case s.ProductivityScore >= 80:
		out = append(out, "Outstanding focus. You're operating at peak productivity.")
	case s.ProductivityScore >= 60:
		out = append(out, "Strong week of focused work. Keep the rhythm going.")
	case s.ProductivityScore >= 40:
		out = append(out, "Solid progress. A few more sessions a day would lift your score.")
	default:
		out = append(out, "Slow stretch. Even one completed session a day rebuilds momentum.")
	}

	switch {
	case s.CurrentStreakDays >= 14:
		out = append(out, fmt.Sprintf("%d-day streak. Focus has become a habit.", s.CurrentStreakDays))
	case s.CurrentStreakDays >= 7:
		out = append(out, fmt.Sprintf("A full week's streak (%d days). Protect it.", s.CurrentStreakDays))
	case s.CurrentStreakDays >= 3:
		out = append(out, fmt.Sprintf("%d days in a row. Streaks compound.", s.CurrentStreakDays))
	}

	switch {
	case s.AverageSessionMinutes >= 45:
		out = append(out, "Your sessions run long. Deep-work territory.")
	case s.AverageSessionMinutes >= 25:
		out = append(out, "Healthy session length. The classic pomodoro suits you.")
	case s.AverageSessionMinutes > 0:
		out = append(out, "Sessions are on the short side. Try finishing the full interval.")
	}

	if s.BestDay != nil {
		out = append(out, fmt.Sprintf("Best day: %s with %d focus minutes.", s.BestDay.Date, s.BestDay.FocusMinutes))
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}
