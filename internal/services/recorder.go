package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

// Recorder bridges timer events to durable session records. It keeps
// the single currently-open interval and upserts it in place on every
// periodic save, so a 25-minute session never produces more than one
// row. Only Finalize or Discard closes the interval.
//
// Recorder is not safe for concurrent use; the engine funnels all calls
// through its single save worker.
type Recorder struct {
	sessions ports.SessionRepository
	now      func() time.Time
	open     *domain.SessionRecord
	// persisted tracks whether the open record has reached the store,
	// so Discard knows when an abandoned row needs closing.
	persisted bool
}

// NewRecorder creates a recorder backed by the given repository.
func NewRecorder(sessions ports.SessionRepository) *Recorder {
	return &Recorder{
		sessions: sessions,
		now:      time.Now,
	}
}

// SaveProgress upserts partial progress for the open interval of the
// given type, opening a new record when none exists. A write failure is
// returned for logging; the dirty duration stays on the open record, so
// the next periodic save retries it naturally — never more than once
// per tick cycle.
func (r *Recorder) SaveProgress(ctx context.Context, t domain.SessionType, elapsedSeconds int) error {
	rec := r.ensureOpen(t)
	rec.DurationMinutes = elapsedSeconds / 60

	if err := r.sessions.UpsertOpenInterval(ctx, rec); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	r.persisted = true
	return nil
}

// Finalize closes the open interval of the given type with its elapsed
// time. completed distinguishes a natural zero-countdown finish from a
// skip or abandon. A partial save followed by Finalize updates the same
// record rather than appending a second one.
func (r *Recorder) Finalize(ctx context.Context, t domain.SessionType, elapsedSeconds int, completed bool) error {
	rec := r.ensureOpen(t)
	rec.Finalize(elapsedSeconds/60, completed)
	r.open = nil
	r.persisted = false

	if err := r.sessions.Finalize(ctx, rec); err != nil {
		return fmt.Errorf("finalize interval: %w", err)
	}
	return nil
}

// Discard abandons the open interval. A reset before any partial save
// writes nothing; once progress has reached the store the row is closed
// as incomplete so it cannot linger as a stale open interval.
func (r *Recorder) Discard(ctx context.Context) error {
	rec := r.open
	wasPersisted := r.persisted
	r.open = nil
	r.persisted = false

	if rec == nil || !wasPersisted {
		return nil
	}
	rec.Finalize(rec.DurationMinutes, false)
	if err := r.sessions.Finalize(ctx, rec); err != nil {
		return fmt.Errorf("discard interval: %w", err)
	}
	return nil
}

// Open returns the in-memory open interval, or nil.
func (r *Recorder) Open() *domain.SessionRecord {
	return r.open
}

// ensureOpen returns the open record for the given type, opening a
// fresh one when the type changed or the previous interval was closed.
func (r *Recorder) ensureOpen(t domain.SessionType) *domain.SessionRecord {
	if r.open == nil || r.open.Type != t {
		r.open = domain.NewSessionRecord(t, r.now())
		r.persisted = false
	}
	return r.open
}
