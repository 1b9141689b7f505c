package cmd

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/spf13/cobra"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of focus statistics",
	Long:  `Display a terminal dashboard with daily focus minutes, weekly trends, streaks, and your most productive hours.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if statsDays < 1 {
			statsDays = 1
		}
		snapshot, err := app.analytics.ComputeTrailing(ctx, statsDays)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		fmt.Println()
		renderDashboard(snapshot, app.cfg.Theme.ColorAccent, app.cfg.Theme.ColorWork)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "Number of trailing days to include")
	rootCmd.AddCommand(statsCmd)
}

func renderDashboard(s *domain.AnalyticsSnapshot, accentColor, barColorHex string) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(barColorHex))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color(barColorHex))

	// Header
	fmt.Printf("  %s\n", titleStyle.Render(fmt.Sprintf("%s – %s", s.StartDate, s.EndDate)))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Summary line
	hours := float64(s.TotalFocusMinutes) / 60
	fmt.Printf("  Total: %s sessions, %s focus\n\n",
		valueStyle.Render(fmt.Sprintf("%d", s.CompletedSessionCount)),
		valueStyle.Render(formatHours(hours)),
	)

	if s.CompletedSessionCount == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No completed sessions in this period."))
		return
	}

	renderDailyBars(s.Daily, dimStyle, barColor)
	renderWeeklyTrend(s.Weekly, dimStyle, valueStyle)

	// Streaks and score
	fmt.Printf("  %s  %s\n",
		dimStyle.Render("Streak:"),
		valueStyle.Render(fmt.Sprintf("%d day(s), longest %d", s.CurrentStreakDays, s.LongestStreakDays)),
	)
	fmt.Printf("  %s  %s\n",
		dimStyle.Render("Productivity score:"),
		valueStyle.Render(fmt.Sprintf("%d/100", s.ProductivityScore)),
	)
	if s.BestDay != nil {
		fmt.Printf("  %s  %s\n",
			dimStyle.Render("Best day:"),
			valueStyle.Render(fmt.Sprintf("%s (%s)", s.BestDay.Date, formatHours(float64(s.BestDay.FocusMinutes)/60))),
		)
	}
	fmt.Println()

	renderTopHours(s.HourlyDistribution, dimStyle, valueStyle)
}

// renderDailyBars draws a horizontal bar per day, scaled to the busiest day.
func renderDailyBars(daily []domain.DailyStat, dimStyle, barColor lipgloss.Style) {
	fmt.Printf("  %s\n", dimStyle.Render("Focus by day"))

	maxMinutes := 0
	for _, d := range daily {
		if d.FocusMinutes > maxMinutes {
			maxMinutes = d.FocusMinutes
		}
	}

	maxBarWidth := 30
	for _, d := range daily {
		barWidth := 0
		if maxMinutes > 0 {
			barWidth = int(math.Round(float64(d.FocusMinutes) / float64(maxMinutes) * float64(maxBarWidth)))
		}
		if barWidth < 1 && d.FocusMinutes > 0 {
			barWidth = 1
		}
		marker := " "
		if d.IsToday {
			marker = "▸"
		}
		dayLabel := fmt.Sprintf("%s %s %-3s", marker, d.Date, d.DayName)
		fmt.Printf("  %s %s %s\n",
			dimStyle.Render(dayLabel),
			barColor.Render(buildBar(barWidth)),
			formatHours(float64(d.FocusMinutes)/60),
		)
	}
	fmt.Println()
}

func renderWeeklyTrend(weekly []domain.WeeklyProgress, dimStyle, valueStyle lipgloss.Style) {
	if len(weekly) == 0 {
		return
	}

	fmt.Printf("  %s\n", dimStyle.Render("Weekly trend"))
	for _, w := range weekly {
		trend := ""
		if w.ImprovementPct > 0 {
			trend = fmt.Sprintf("↑ %.0f%%", w.ImprovementPct)
		} else if w.ImprovementPct < 0 {
			trend = fmt.Sprintf("↓ %.0f%%", -w.ImprovementPct)
		}
		weekLabel := fmt.Sprintf("%-14s", w.WeekLabel)
		fmt.Printf("  %s  %s session%s  %s  %s\n",
			dimStyle.Render(weekLabel),
			valueStyle.Render(fmt.Sprintf("%d", w.SessionCount)),
			func() string {
				if w.SessionCount == 1 {
					return ""
				}
				return "s"
			}(),
			formatHours(float64(w.FocusMinutes)/60),
			valueStyle.Render(trend),
		)
	}
	fmt.Println()
}

// hourEntry pairs an hour of day with its completed session count.
type hourEntry struct {
	Hour  int
	Count int
}

// topHours picks the n busiest hours, most sessions first, earlier
// hour winning ties.
func topHours(hourly map[int]int, n int) []hourEntry {
	entries := make([]hourEntry, 0, len(hourly))
	for h, c := range hourly {
		entries = append(entries, hourEntry{Hour: h, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Hour < entries[j].Hour
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func renderTopHours(hourly map[int]int, dimStyle, valueStyle lipgloss.Style) {
	entries := topHours(hourly, 3)
	if len(entries) == 0 {
		return
	}

	fmt.Printf("  %s\n", dimStyle.Render("Your most productive hours"))
	for _, e := range entries {
		hourLabel := fmt.Sprintf("%2d:00-%d:00", e.Hour, e.Hour+1)
		sessions := fmt.Sprintf("%d session", e.Count)
		if e.Count != 1 {
			sessions += "s"
		}
		fmt.Printf("  %s  %s\n",
			dimStyle.Render(hourLabel),
			valueStyle.Render(sessions),
		)
	}
	fmt.Println()
}

// buildBar creates a horizontal bar using block characters.
func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}

// formatHours formats a float hours value as "Xh Ym".
func formatHours(h float64) string {
	if h < 0.01 {
		return "0m"
	}
	hours := int(h)
	minutes := int(math.Round((h - float64(hours)) * 60))
	if hours > 0 && minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}
