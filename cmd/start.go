package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/nihzaa/focusflow/internal/adapters/tui"
	"github.com/spf13/cobra"
)

var startImmediately bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the interactive Pomodoro timer",
	Long: `Open the timer view. Space starts and pauses, "s" skips to the next
interval, "r" resets the current one, and "q" quits. Every interval is
recorded, including partial progress saved every 30 seconds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if startImmediately {
			app.engine.Start(ctx)
		}

		controls := tui.Controls{
			Start: func() { app.engine.Start(context.Background()) },
			Pause: app.engine.Pause,
			Skip:  app.engine.Skip,
			Reset: app.engine.Reset,
		}
		fetchQuote := func() string {
			return app.quotes.Fetch(context.Background())
		}

		return tui.Run(ctx, app.engine.State(), app.engine.State, controls, fetchQuote, &app.cfg.Theme)
	},
}

func init() {
	startCmd.Flags().BoolVarP(&startImmediately, "now", "n", true, "Start the countdown immediately")
	rootCmd.AddCommand(startCmd)
}
