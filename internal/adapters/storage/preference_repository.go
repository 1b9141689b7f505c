package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

// preferenceRepository implements ports.PreferenceRepository using SQLite.
// Preferences live in a single keyed row.
type preferenceRepository struct {
	db *sql.DB
}

// newPreferenceRepository creates a new preference repository.
func newPreferenceRepository(db *sql.DB) ports.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Get retrieves the stored preferences, or the defaults when nothing
// has been saved yet.
func (r *preferenceRepository) Get(ctx context.Context) (*domain.Preferences, error) {
	query := `
		SELECT work_min, short_break_min, long_break_min,
		       sessions_before_long, auto_start_breaks, auto_start_work
		FROM preferences
		WHERE id = 1
	`

	var prefs domain.Preferences
	err := r.db.QueryRowContext(ctx, query).Scan(
		&prefs.WorkMinutes,
		&prefs.ShortBreakMinutes,
		&prefs.LongBreakMinutes,
		&prefs.SessionsBeforeLong,
		&prefs.AutoStartBreaks,
		&prefs.AutoStartWork,
	)
	if err == sql.ErrNoRows {
		defaults := domain.DefaultPreferences()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return &prefs, nil
}

// Save persists the preferences, overwriting any previous values.
func (r *preferenceRepository) Save(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		INSERT INTO preferences (id, work_min, short_break_min, long_break_min,
			sessions_before_long, auto_start_breaks, auto_start_work)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			work_min = excluded.work_min,
			short_break_min = excluded.short_break_min,
			long_break_min = excluded.long_break_min,
			sessions_before_long = excluded.sessions_before_long,
			auto_start_breaks = excluded.auto_start_breaks,
			auto_start_work = excluded.auto_start_work
	`

	_, err := r.db.ExecContext(ctx, query,
		prefs.WorkMinutes,
		prefs.ShortBreakMinutes,
		prefs.LongBreakMinutes,
		prefs.SessionsBeforeLong,
		prefs.AutoStartBreaks,
		prefs.AutoStartWork,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
