package domain

// TimerPhase represents the run state of the timer.
type TimerPhase string

const (
	TimerPhaseStopped TimerPhase = "stopped"
	TimerPhasePaused  TimerPhase = "paused"
	TimerPhaseRunning TimerPhase = "running"
)

// TimerState is the read model of the single active timer.
// Exactly one instance exists per engine; all mutation is funneled
// through the engine so external readers always see a consistent copy.
type TimerState struct {
	Phase              TimerPhase
	Type               SessionType
	RemainingSeconds   int
	TotalSeconds       int
	CompletedWorkCount int
}

// ElapsedSeconds returns how much of the current interval has run.
func (s TimerState) ElapsedSeconds() int {
	elapsed := s.TotalSeconds - s.RemainingSeconds
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Preferences holds user-configurable timer durations and auto-start flags.
type Preferences struct {
	WorkMinutes        int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	SessionsBeforeLong int
	AutoStartBreaks    bool
	AutoStartWork      bool
}

// DefaultPreferences returns the standard pomodoro configuration.
func DefaultPreferences() Preferences {
	return Preferences{
		WorkMinutes:        25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		SessionsBeforeLong: 4,
	}
}

// DurationSeconds returns the configured interval length for a session type.
func (p Preferences) DurationSeconds(t SessionType) int {
	switch t {
	case SessionTypeShortBreak:
		return p.ShortBreakMinutes * 60
	case SessionTypeLongBreak:
		return p.LongBreakMinutes * 60
	default:
		return p.WorkMinutes * 60
	}
}

// AutoStart reports whether an interval of the given type should begin
// on its own after the previous one completes.
func (p Preferences) AutoStart(t SessionType) bool {
	if t == SessionTypeWork {
		return p.AutoStartWork
	}
	return p.AutoStartBreaks
}

// NextSessionType selects the interval that follows a finished one.
// Every Nth completed work interval earns a long break; any break leads
// back to work. completedWorkCount is the counter after the finished
// interval was (or was not, for skips) counted.
func NextSessionType(current SessionType, completedWorkCount, sessionsBeforeLong int) SessionType {
	if current != SessionTypeWork {
		return SessionTypeWork
	}
	if sessionsBeforeLong <= 0 {
		sessionsBeforeLong = 4
	}
	if completedWorkCount > 0 && completedWorkCount%sessionsBeforeLong == 0 {
		return SessionTypeLongBreak
	}
	return SessionTypeShortBreak
}
