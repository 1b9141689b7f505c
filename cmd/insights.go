package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nihzaa/focusflow/internal/analytics"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show productivity insights for the last 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		snapshot, err := app.analytics.ComputeTrailing(ctx, 30)
		if err != nil {
			return fmt.Errorf("failed to compute insights: %w", err)
		}

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.cfg.Theme.ColorWork))
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.cfg.Theme.ColorAccent))

		fmt.Println()
		fmt.Printf("  %s\n\n", titleStyle.Render("Productivity Insights (last 30 days)"))
		fmt.Printf("  %s  %s\n\n",
			dimStyle.Render("Score:"),
			valueStyle.Render(fmt.Sprintf("%d/100", snapshot.ProductivityScore)),
		)

		for _, line := range analytics.Insights(snapshot) {
			fmt.Printf("  • %s\n", line)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
