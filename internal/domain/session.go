package domain

import (
	"time"
)

// SessionType represents the type of timer interval.
type SessionType string

const (
	SessionTypeWork       SessionType = "work"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// DateLayout is the calendar-day key format used on session records.
// The date key is stored independently of StartedAt so offline-entered
// records can carry their own day.
const DateLayout = "2006-01-02"

// DateKey returns the calendar-day key for an instant.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a calendar-day key back into a UTC midnight instant.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}

// SessionRecord represents one completed-or-abandoned timer interval.
// A record with Completed=false holds partial progress; while Open is
// true the interval is still being written to by the recorder.
type SessionRecord struct {
	ID              string
	Type            SessionType
	StartedAt       *time.Time
	Date            string
	DurationMinutes int
	Completed       bool
	Open            bool
}

// NewSessionRecord opens a record for an interval starting at the given instant.
func NewSessionRecord(t SessionType, startedAt time.Time) *SessionRecord {
	return &SessionRecord{
		ID:        generateID(),
		Type:      t,
		StartedAt: &startedAt,
		Date:      DateKey(startedAt),
		Open:      true,
	}
}

// Finalize closes the record with the elapsed minutes. Completed marks
// whether the interval ran to zero or was abandoned/skipped.
func (r *SessionRecord) Finalize(durationMinutes int, completed bool) {
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	r.DurationMinutes = durationMinutes
	r.Completed = completed
	r.Open = false
}

// IsWork returns true if this record belongs to a work interval.
func (r *SessionRecord) IsWork() bool {
	return r.Type == SessionTypeWork
}

// IsBreak returns true if this record belongs to a break interval.
func (r *SessionRecord) IsBreak() bool {
	return r.Type == SessionTypeShortBreak || r.Type == SessionTypeLongBreak
}

// SessionTypeLabel returns a human-readable label for the session type.
func SessionTypeLabel(t SessionType) string {
	switch t {
	case SessionTypeWork:
		return "Work"
	case SessionTypeShortBreak:
		return "Short Break"
	case SessionTypeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}
