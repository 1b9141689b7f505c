// Package ports defines the interfaces (driven and driving ports)
// between the focusflow core and external infrastructure.
package ports

import (
	"context"

	"github.com/nihzaa/focusflow/internal/domain"
)

// SessionRepository defines the interface for session record persistence.
// This is a driven port (implemented by adapters).
type SessionRepository interface {
	// ListByDateRange retrieves records whose date key falls in the
	// closed range [startDate, endDate].
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.SessionRecord, error)

	// FindOpen retrieves the currently open interval for a day and
	// session type, or nil when none is open.
	FindOpen(ctx context.Context, date string, t domain.SessionType) (*domain.SessionRecord, error)

	// UpsertOpenInterval writes partial progress for the open interval.
	// Repeated calls for the same record update in place rather than
	// appending a new row per save tick.
	UpsertOpenInterval(ctx context.Context, record *domain.SessionRecord) error

	// Finalize closes an interval, persisting its final duration and
	// completion flag and clearing the open marker.
	Finalize(ctx context.Context, record *domain.SessionRecord) error
}

// PreferenceRepository defines the interface for user preference persistence.
// This is a driven port (implemented by adapters).
type PreferenceRepository interface {
	// Get retrieves the stored preferences, falling back to defaults
	// when none have been saved yet.
	Get(ctx context.Context) (*domain.Preferences, error)

	// Save persists the preferences.
	Save(ctx context.Context, prefs *domain.Preferences) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Sessions provides access to session record operations.
	Sessions() SessionRepository

	// Preferences provides access to preference operations.
	Preferences() PreferenceRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
