package analytics

import (
	"strings"
	"testing"

	"github.com/nihzaa/focusflow/internal/domain"
)

func TestInsights(t *testing.T) {
	t.Run("empty snapshot still gets a score message", func(t *testing.T) {
		got := Insights(&domain.AnalyticsSnapshot{})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if !strings.Contains(got[0], "Slow stretch") {
			t.Errorf("got %q, want the low-score message", got[0])
		}
	})

	t.Run("one message per category in order", func(t *testing.T) {
		snap := &domain.AnalyticsSnapshot{
			ProductivityScore:     85,
			CurrentStreakDays:     5,
			AverageSessionMinutes: 30,
			BestDay:               &domain.BestDay{Date: "2025-03-11", FocusMinutes: 120},
		}
		got := Insights(snap)
		if len(got) != 4 {
			t.Fatalf("len = %d, want 4", len(got))
		}
		if !strings.Contains(got[0], "Outstanding") {
			t.Errorf("got[0] = %q, want score message first", got[0])
		}
		if !strings.Contains(got[1], "5 days in a row") {
			t.Errorf("got[1] = %q, want streak message second", got[1])
		}
		if !strings.Contains(got[2], "pomodoro") {
			t.Errorf("got[2] = %q, want session-length message third", got[2])
		}
		if !strings.Contains(got[3], "2025-03-11") {
			t.Errorf("got[3] = %q, want best-day message last", got[3])
		}
	})

	t.Run("never more than four", func(t *testing.T) {
		snap := &domain.AnalyticsSnapshot{
			ProductivityScore:     95,
			CurrentStreakDays:     21,
			AverageSessionMinutes: 60,
			BestDay:               &domain.BestDay{Date: "2025-03-11", FocusMinutes: 300},
		}
		if got := Insights(snap); len(got) > 4 {
			t.Errorf("len = %d, want at most 4", len(got))
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		snap := &domain.AnalyticsSnapshot{
			ProductivityScore:     65,
			CurrentStreakDays:     8,
			AverageSessionMinutes: 50,
		}
		first := Insights(snap)
		second := Insights(snap)
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("message %d differs: %q vs %q", i, first[i], second[i])
			}
		}
	})
}
