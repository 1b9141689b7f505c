package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nihzaa/focusflow/internal/domain"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{25 * 60, "25:00"},
		{5 * 60, "05:00"},
		{90, "01:30"},
		{0, "00:00"},
		{3661, "1:01:01"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatClock(tt.seconds)
			if got != tt.want {
				t.Errorf("formatClock(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func runningWorkState() domain.TimerState {
	return domain.TimerState{
		Phase:            domain.TimerPhaseRunning,
		Type:             domain.SessionTypeWork,
		RemainingSeconds: 1200,
		TotalSeconds:     1500,
	}
}

func TestModelView(t *testing.T) {
	state := runningWorkState()
	model := NewModel(state, func() domain.TimerState { return state }, Controls{}, nil, nil)

	view := model.View()
	if !strings.Contains(view, "20:00") {
		t.Errorf("View() should show the remaining time, got:\n%s", view)
	}
	if !strings.Contains(view, "Work") {
		t.Errorf("View() should show the session type, got:\n%s", view)
	}
	if !strings.Contains(view, "running") {
		t.Errorf("View() should show the phase, got:\n%s", view)
	}
}

func TestModelSpaceTogglesStartPause(t *testing.T) {
	state := domain.TimerState{
		Phase:            domain.TimerPhaseStopped,
		Type:             domain.SessionTypeWork,
		RemainingSeconds: 1500,
		TotalSeconds:     1500,
	}
	started, paused := 0, 0
	controls := Controls{
		Start: func() { started++; state.Phase = domain.TimerPhaseRunning },
		Pause: func() { paused++; state.Phase = domain.TimerPhasePaused },
	}
	model := NewModel(state, func() domain.TimerState { return state }, controls, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	model = next.(Model)
	if started != 1 || paused != 0 {
		t.Fatalf("after first space: started=%d paused=%d, want 1/0", started, paused)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	model = next.(Model)
	if paused != 1 {
		t.Errorf("after second space: paused=%d, want 1", paused)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if _, ok := next.(Model); !ok {
		t.Fatal("Update() should return a Model")
	}
	if started != 2 {
		t.Errorf("space while paused should resume, started=%d, want 2", started)
	}
}

func TestModelSkipAndReset(t *testing.T) {
	state := runningWorkState()
	skipped, reset := 0, 0
	controls := Controls{
		Skip:  func() { skipped++ },
		Reset: func() { reset++ },
	}
	model := NewModel(state, func() domain.TimerState { return state }, controls, nil, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = next.(Model)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if _, ok := next.(Model); !ok {
		t.Fatal("Update() should return a Model")
	}
	if reset != 1 {
		t.Errorf("reset = %d, want 1", reset)
	}
}

func TestModelQuit(t *testing.T) {
	state := runningWorkState()
	model := NewModel(state, func() domain.TimerState { return state }, Controls{}, nil, nil)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want tea.Quit", msg)
	}
}

func TestModelCompletionFlash(t *testing.T) {
	state := runningWorkState()
	fetched := 0
	model := NewModel(state, func() domain.TimerState { return state }, Controls{},
		func() string { fetched++; return "Keep going." }, nil)

	// The interval flips to a break underneath the poll.
	state = domain.TimerState{
		Phase:            domain.TimerPhaseStopped,
		Type:             domain.SessionTypeShortBreak,
		RemainingSeconds: 300,
		TotalSeconds:     300,
	}

	next, cmd := model.Update(tickMsg{})
	model = next.(Model)
	if model.flashLeft != flashTicks {
		t.Errorf("flashLeft = %d, want %d", model.flashLeft, flashTicks)
	}
	if model.completedType != domain.SessionTypeWork {
		t.Errorf("completedType = %v, want work", model.completedType)
	}
	if cmd == nil {
		t.Fatal("a finished work interval should trigger the quote fetch")
	}

	view := model.View()
	if !strings.Contains(view, "Session complete") {
		t.Errorf("View() should show the completion banner, got:\n%s", view)
	}
}

func TestModelSkippedWorkSkipsQuote(t *testing.T) {
	state := runningWorkState()
	model := NewModel(state, func() domain.TimerState { return state }, Controls{Skip: func() {
		state = domain.TimerState{
			Phase:            domain.TimerPhaseStopped,
			Type:             domain.SessionTypeShortBreak,
			RemainingSeconds: 300,
			TotalSeconds:     300,
		}
	}}, func() string { return "should not be fetched" }, nil)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model = next.(Model)
	if !model.skipped {
		t.Fatal("skip should mark the interval as skipped")
	}

	next, _ = model.Update(tickMsg{})
	model = next.(Model)
	if model.quote != "" {
		t.Errorf("quote = %q, want none after a skip", model.quote)
	}
	if model.skipped {
		t.Error("the skipped flag should clear once the transition is seen")
	}
}
