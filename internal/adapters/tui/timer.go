package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/domain"
)

// Run starts the timer view and blocks until the user quits. The view
// polls fetchState at 1 Hz; control keys go straight to the engine via
// the Controls callbacks.
func Run(ctx context.Context, initial domain.TimerState, fetchState func() domain.TimerState, controls Controls, fetchQuote func() string, theme *config.ThemeConfig) error {
	model := NewModel(initial, fetchState, controls, fetchQuote, theme)

	// Seed the width before the first WindowSizeMsg arrives.
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		model.width = w
	}

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
