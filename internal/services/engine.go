// Package services contains the focusflow use cases: the timer engine,
// the session recorder, and the analytics service.
package services

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

const (
	// autosaveIntervalTicks is how many elapsed seconds pass between
	// partial-progress saves while running.
	autosaveIntervalTicks = 30

	// autoAdvanceDelay lets completion side effects (sound, notification)
	// register before an auto-started interval silently begins.
	autoAdvanceDelay = 2 * time.Second

	saveQueueDepth = 8
)

// Engine is the timer state machine. It owns the single active interval
// and serializes every transition behind one mutex; concurrent readers
// get a consistent snapshot via State. Persistence runs on a dedicated
// save worker so a slow or failing store never delays tick delivery.
type Engine struct {
	mu        sync.Mutex
	state     domain.TimerState
	prefs     domain.Preferences
	storage   ports.Storage
	recorder  *Recorder
	listeners []ports.TimerEventListener

	ticksSinceSave int
	stopLoop       chan struct{}
	loopDisabled   bool

	autoStart *time.Timer

	saveCh   chan func()
	saveDone chan struct{}
	closed   bool

	logf func(format string, args ...any)
}

// NewEngine creates an engine in the STOPPED phase, primed with a full
// work interval from the stored preferences.
func NewEngine(ctx context.Context, storage ports.Storage) *Engine {
	e := &Engine{
		storage:  storage,
		recorder: NewRecorder(storage.Sessions()),
		saveCh:   make(chan func(), saveQueueDepth),
		saveDone: make(chan struct{}),
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}

	e.prefs = e.loadPreferences(ctx)
	e.state = domain.TimerState{
		Phase:            domain.TimerPhaseStopped,
		Type:             domain.SessionTypeWork,
		TotalSeconds:     e.prefs.DurationSeconds(domain.SessionTypeWork),
		RemainingSeconds: e.prefs.DurationSeconds(domain.SessionTypeWork),
	}

	go e.saveWorker()
	return e
}

// Subscribe registers a listener for phase-changed and
// interval-completed events.
func (e *Engine) Subscribe(l ports.TimerEventListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// State returns a consistent snapshot of the timer.
func (e *Engine) State() domain.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Start moves the timer from STOPPED or PAUSED to RUNNING. When the
// interval has no time left, the duration for the current session type
// is reloaded from preferences first. Starting a zero-length interval
// completes it immediately instead of looping.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	// A pending auto-start can fire after Close; it must not revive the
	// engine once the save worker is gone.
	if e.closed || e.state.Phase == domain.TimerPhaseRunning {
		e.mu.Unlock()
		return
	}
	e.cancelAutoStartLocked()

	if e.state.RemainingSeconds == 0 {
		e.prefs = e.loadPreferences(ctx)
		e.state.TotalSeconds = e.prefs.DurationSeconds(e.state.Type)
		e.state.RemainingSeconds = e.state.TotalSeconds
	}

	if e.state.TotalSeconds == 0 {
		events := e.completeLocked()
		e.mu.Unlock()
		for _, fn := range events {
			fn()
		}
		return
	}

	e.state.Phase = domain.TimerPhaseRunning
	e.startLoopLocked()
	snap := e.state
	e.mu.Unlock()
	e.notifyPhase(snap)
}

// Pause suspends a running timer and persists the partial progress.
// Pausing a stopped or already-paused timer is a no-op.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.state.Phase != domain.TimerPhaseRunning {
		e.mu.Unlock()
		return
	}
	e.stopLoopLocked()
	e.state.Phase = domain.TimerPhasePaused
	t, elapsed := e.state.Type, e.state.ElapsedSeconds()
	snap := e.state
	e.mu.Unlock()

	e.enqueueSave(e.progressWrite(t, elapsed))
	e.notifyPhase(snap)
}

// Skip abandons the current interval, records it as incomplete, and
// advances to the next session type without counting toward the
// long-break cadence. A stopped timer cannot be skipped.
func (e *Engine) Skip() {
	e.mu.Lock()
	if e.closed || e.state.Phase == domain.TimerPhaseStopped {
		e.mu.Unlock()
		return
	}
	e.cancelAutoStartLocked()
	e.stopLoopLocked()
	e.ticksSinceSave = 0

	finished := e.state.Type
	elapsed := e.state.ElapsedSeconds()
	e.state.RemainingSeconds = 0

	next := domain.NextSessionType(finished, e.state.CompletedWorkCount, e.prefs.SessionsBeforeLong)
	e.state.Type = next
	e.state.TotalSeconds = e.prefs.DurationSeconds(next)
	e.state.RemainingSeconds = e.state.TotalSeconds
	e.state.Phase = domain.TimerPhaseStopped
	e.enqueueFinalize(finished, elapsed, false)
	snap := e.state
	e.mu.Unlock()

	e.notifyPhase(snap)
}

// Reset discards all elapsed progress and reloads the full duration for
// the current session type. A reset before any partial save writes
// nothing; an already-saved partial is closed as incomplete.
func (e *Engine) Reset() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cancelAutoStartLocked()
	e.stopLoopLocked()
	e.ticksSinceSave = 0
	e.state.TotalSeconds = e.prefs.DurationSeconds(e.state.Type)
	e.state.RemainingSeconds = e.state.TotalSeconds
	e.state.Phase = domain.TimerPhaseStopped
	snap := e.state

	// Blocking send, like a finalize: a discard that has to close an
	// already-saved partial must not be dropped.
	e.saveCh <- func() {
		if err := e.recorder.Discard(context.Background()); err != nil {
			e.logf("could not discard session: %v", err)
		}
	}
	e.mu.Unlock()

	e.notifyPhase(snap)
}

// Tick advances the countdown by one second of wall-clock time. Only
// valid while RUNNING; any other phase ignores it. Every 30 ticks a
// partial-progress save is queued, and reaching zero completes the
// interval.
func (e *Engine) Tick() {
	e.mu.Lock()
	if e.closed || e.state.Phase != domain.TimerPhaseRunning {
		e.mu.Unlock()
		return
	}

	e.state.RemainingSeconds--
	if e.state.RemainingSeconds < 0 {
		e.state.RemainingSeconds = 0
	}
	e.ticksSinceSave++

	if e.state.RemainingSeconds == 0 {
		events := e.completeLocked()
		e.mu.Unlock()
		for _, fn := range events {
			fn()
		}
		return
	}

	if e.ticksSinceSave >= autosaveIntervalTicks {
		e.ticksSinceSave = 0
		t, elapsed := e.state.Type, e.state.ElapsedSeconds()
		e.mu.Unlock()
		e.enqueueSave(e.progressWrite(t, elapsed))
		return
	}
	e.mu.Unlock()
}

// Close stops the tick loop, cancels any pending auto-start, and drains
// the save queue. The engine must not be used afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.cancelAutoStartLocked()
	e.stopLoopLocked()
	close(e.saveCh)
	e.mu.Unlock()

	<-e.saveDone
}

// completeLocked finalizes the current interval at zero remaining time,
// advances the session type, and arms the auto-start delay when the
// matching preference is on. Caller holds the lock; the returned
// closures fire listener events after it is released.
func (e *Engine) completeLocked() []func() {
	e.stopLoopLocked()
	e.ticksSinceSave = 0

	finished := e.state.Type
	elapsed := e.state.TotalSeconds

	if finished == domain.SessionTypeWork {
		e.state.CompletedWorkCount++
	}

	next := domain.NextSessionType(finished, e.state.CompletedWorkCount, e.prefs.SessionsBeforeLong)
	e.state.Type = next
	e.state.TotalSeconds = e.prefs.DurationSeconds(next)
	e.state.RemainingSeconds = e.state.TotalSeconds
	e.state.Phase = domain.TimerPhaseStopped

	e.enqueueFinalize(finished, elapsed, true)

	if e.prefs.AutoStart(next) && !e.closed {
		e.autoStart = time.AfterFunc(autoAdvanceDelay, func() {
			e.Start(context.Background())
		})
	}

	snap := e.state
	minutes := elapsed / 60
	return []func(){
		func() { e.notifyCompleted(finished, minutes) },
		func() { e.notifyPhase(snap) },
	}
}

// startLoopLocked launches the 1 Hz tick source. Caller holds the lock.
func (e *Engine) startLoopLocked() {
	if e.loopDisabled || e.stopLoop != nil {
		return
	}
	stop := make(chan struct{})
	e.stopLoop = stop
	go e.run(stop)
}

// stopLoopLocked cancels the tick source the instant the phase leaves
// RUNNING, so a paused or stopped timer never busy-waits.
func (e *Engine) stopLoopLocked() {
	if e.stopLoop != nil {
		close(e.stopLoop)
		e.stopLoop = nil
	}
}

func (e *Engine) run(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

func (e *Engine) cancelAutoStartLocked() {
	if e.autoStart != nil {
		e.autoStart.Stop()
		e.autoStart = nil
	}
}

// progressWrite builds the deferred partial-save for the save worker.
func (e *Engine) progressWrite(t domain.SessionType, elapsedSeconds int) func() {
	return func() {
		if err := e.recorder.SaveProgress(context.Background(), t, elapsedSeconds); err != nil {
			e.logf("could not save progress: %v", err)
		}
	}
}

// enqueueSave hands a write to the save worker without blocking. When
// the queue is full the write is dropped and retried by the next
// periodic save, keeping the backlog bounded.
func (e *Engine) enqueueSave(fn func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	select {
	case e.saveCh <- fn:
	default:
		e.logf("save queue full, progress write dropped")
	}
}

// enqueueFinalize queues the closing write for an interval. Unlike
// partial saves this send blocks: a finalized record must not be lost.
// Caller holds the lock, which keeps Close from shutting the channel
// mid-send; after Close the write has nowhere to go and is dropped.
func (e *Engine) enqueueFinalize(t domain.SessionType, elapsedSeconds int, completed bool) {
	if e.closed {
		e.logf("engine closed, session record dropped")
		return
	}
	e.saveCh <- func() {
		if err := e.recorder.Finalize(context.Background(), t, elapsedSeconds, completed); err != nil {
			e.logf("could not record session: %v", err)
		}
	}
}

func (e *Engine) saveWorker() {
	defer close(e.saveDone)
	for fn := range e.saveCh {
		fn()
	}
}

// flush waits until every queued write has been applied.
func (e *Engine) flush() {
	done := make(chan struct{})
	e.saveCh <- func() { close(done) }
	<-done
}

func (e *Engine) loadPreferences(ctx context.Context) domain.Preferences {
	prefs, err := e.storage.Preferences().Get(ctx)
	if err != nil || prefs == nil {
		if err != nil {
			e.logf("could not load preferences: %v", err)
		}
		return domain.DefaultPreferences()
	}
	return *prefs
}

func (e *Engine) notifyPhase(state domain.TimerState) {
	for _, l := range e.listenersSnapshot() {
		l.PhaseChanged(state)
	}
}

func (e *Engine) notifyCompleted(t domain.SessionType, minutes int) {
	for _, l := range e.listenersSnapshot() {
		l.IntervalCompleted(t, minutes)
	}
}

func (e *Engine) listenersSnapshot() []ports.TimerEventListener {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]ports.TimerEventListener, len(e.listeners))
	copy(out, e.listeners)
	return out
}
