// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

// Notifier surfaces interval completions as desktop notifications. It
// subscribes to engine events so the tick path stays free of I/O.
type Notifier struct {
	cfg *config.NotificationConfig

	notify func(title, message, appIcon string) error
	beep   func(freq float64, duration int) error
}

// Ensure Notifier can be wired as an engine listener.
var _ ports.TimerEventListener = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: func(title, message, appIcon string) error {
			return beeep.Notify(title, message, appIcon)
		},
		beep:   beeep.Beep,
	}
}

// PhaseChanged implements ports.TimerEventListener. Phase transitions
// alone do not raise notifications.
func (n *Notifier) PhaseChanged(domain.TimerState) {}

// IntervalCompleted implements ports.TimerEventListener.
func (n *Notifier) IntervalCompleted(t domain.SessionType, durationMinutes int) {
	if n.cfg == nil || !n.cfg.Enabled {
		return
	}

	var title, message string
	if t == domain.SessionTypeWork {
		title = "🍅 Session Complete!"
		message = fmt.Sprintf("Great job! You focused for %d minutes. Time for a break.", durationMinutes)
	} else {
		title = "☕ Break Over!"
		message = fmt.Sprintf("Your %s is complete. Ready to focus?", breakLabel(t))
	}

	// Best effort: a failed notification never reaches the timer.
	_ = n.notify(title, message, "")
	if n.cfg.Sound {
		_ = n.beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

func breakLabel(t domain.SessionType) string {
	if t == domain.SessionTypeLongBreak {
		return "long break"
	}
	return "short break"
}
