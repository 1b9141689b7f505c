// Package tui provides the terminal timer view using the Bubbletea
// framework. It polls the engine at 1 Hz and forwards key presses to
// the timer control surface; it never mutates timer state directly.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/domain"
)

// tickMsg is sent on every display tick.
type tickMsg time.Time

// quoteMsg carries a fetched completion quote.
type quoteMsg string

// flashTicks is how many display ticks the completion banner stays up.
const flashTicks = 6

// Controls is the timer control surface the view drives.
type Controls struct {
	Start func()
	Pause func()
	Skip  func()
	Reset func()
}

// Model represents the TUI state.
type Model struct {
	state      domain.TimerState
	fetchState func() domain.TimerState
	controls   Controls
	fetchQuote func() string

	progress progress.Model
	width    int
	height   int
	theme    config.ThemeConfig

	completedType domain.SessionType
	flashLeft     int
	skipped       bool
	quote         string
	quitting      bool
}

// NewModel creates a new TUI model.
func NewModel(initial domain.TimerState, fetchState func() domain.TimerState, controls Controls, fetchQuote func() string, theme *config.ThemeConfig) Model {
	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}
	return Model{
		state:      initial,
		fetchState: fetchState,
		controls:   controls,
		fetchQuote: fetchQuote,
		progress:   progress.New(progress.WithDefaultGradient()),
		theme:      resolved,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchQuoteCmd fetches the completion quote off the update loop.
func fetchQuoteCmd(fetch func() string) tea.Cmd {
	return func() tea.Msg {
		return quoteMsg(fetch())
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 50 {
			m.progress.Width = 50
		}
		return m, nil

	case tickMsg:
		prev := m.state
		m.state = m.fetchState()
		var cmd tea.Cmd
		if prev.Type != m.state.Type {
			// The interval ended underneath us: completed or skipped.
			m.completedType = prev.Type
			m.flashLeft = flashTicks
			if prev.Type == domain.SessionTypeWork && !m.skipped && m.fetchQuote != nil {
				cmd = fetchQuoteCmd(m.fetchQuote)
			}
			m.skipped = false
		} else if m.flashLeft > 0 {
			m.flashLeft--
			if m.flashLeft == 0 {
				m.quote = ""
			}
		}
		return m, tea.Batch(tickCmd(), cmd)

	case quoteMsg:
		m.quote = string(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			if m.state.Phase == domain.TimerPhaseRunning {
				m.controls.Pause()
			} else {
				m.controls.Start()
			}
			m.state = m.fetchState()
			return m, nil
		case "s":
			if m.state.Phase != domain.TimerPhaseStopped {
				m.skipped = true
			}
			m.controls.Skip()
			m.state = m.fetchState()
			return m, nil
		case "r":
			m.controls.Reset()
			m.state = m.fetchState()
			return m, nil
		}
	}

	return m, nil
}

// View renders the timer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorAccent))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(m.phaseColor())

	header := titleStyle.Render("🍅 focusflow") + "  " +
		helpStyle.Render(domain.SessionTypeLabel(m.state.Type)+" · "+phaseLabel(m.state.Phase))

	clock := timeStyle.Render(formatClock(m.state.RemainingSeconds))

	bar := m.progress.ViewAs(m.progressRatio())

	help := helpStyle.Render("space start/pause · s skip · r reset · q quit")

	view := fmt.Sprintf("\n  %s\n\n  %s\n\n  %s\n\n  %s\n", header, clock, bar, help)

	if m.flashLeft > 0 {
		flash := titleStyle.Render(completionBanner(m.completedType))
		view += fmt.Sprintf("\n  %s\n", flash)
		if m.quote != "" {
			view += fmt.Sprintf("  %s\n", helpStyle.Render("“"+m.quote+"”"))
		}
	}

	return view
}

func (m Model) progressRatio() float64 {
	if m.state.TotalSeconds == 0 {
		return 0
	}
	return float64(m.state.ElapsedSeconds()) / float64(m.state.TotalSeconds)
}

func (m Model) phaseColor() lipgloss.Color {
	switch {
	case m.state.Phase == domain.TimerPhasePaused:
		return lipgloss.Color(m.theme.ColorPaused)
	case m.state.Type != domain.SessionTypeWork:
		return lipgloss.Color(m.theme.ColorBreak)
	default:
		return lipgloss.Color(m.theme.ColorWork)
	}
}

func phaseLabel(p domain.TimerPhase) string {
	switch p {
	case domain.TimerPhaseRunning:
		return "running"
	case domain.TimerPhasePaused:
		return "paused"
	default:
		return "stopped"
	}
}

func completionBanner(t domain.SessionType) string {
	if t == domain.SessionTypeWork {
		return "Session complete! Take a breather."
	}
	return "Break over. Back to it."
}

// formatClock renders remaining seconds as mm:ss (or h:mm:ss).
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
