package ports

import (
	"context"

	"github.com/nihzaa/focusflow/internal/domain"
)

// TimerEventListener receives discrete timer events. Side effects such
// as sound, notifications, or quote fetching hang off these callbacks
// instead of living in the tick path. Listeners are invoked outside the
// engine lock and must not block; slow work belongs in a goroutine.
type TimerEventListener interface {
	// PhaseChanged fires after every phase transition with a consistent
	// snapshot of the new state.
	PhaseChanged(state domain.TimerState)

	// IntervalCompleted fires when an interval's countdown reaches zero.
	// Skipped or reset intervals do not complete.
	IntervalCompleted(t domain.SessionType, durationMinutes int)
}

// QuoteProvider supplies a short motivational line for the completion
// screen. Implementations are best-effort: they return a static
// fallback rather than an error and must never block the timer.
type QuoteProvider interface {
	Fetch(ctx context.Context) string
}
