package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

// sessionRepository implements ports.SessionRepository using SQLite.
type sessionRepository struct {
	db *sql.DB
}

// newSessionRepository creates a new session repository.
func newSessionRepository(db *sql.DB) ports.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = "id, type, date, started_at, duration_min, completed, open"

// UpsertOpenInterval writes partial progress for an open interval.
// Repeated saves for the same record update the existing row, so a
// running interval occupies exactly one row no matter how many save
// ticks it lives through.
func (r *sessionRepository) UpsertOpenInterval(ctx context.Context, record *domain.SessionRecord) error {
	query := `
		INSERT INTO sessions (id, type, date, started_at, duration_min, completed, open)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			duration_min = excluded.duration_min,
			completed = excluded.completed,
			open = excluded.open
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Type),
		record.Date,
		record.StartedAt,
		record.DurationMinutes,
		record.Completed,
		record.Open,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert open interval: %w", err)
	}

	return nil
}

// Finalize closes an interval. A record that was never partially saved
// is inserted directly in its finalized form.
func (r *sessionRepository) Finalize(ctx context.Context, record *domain.SessionRecord) error {
	return r.UpsertOpenInterval(ctx, record)
}

// FindOpen retrieves the most recent open interval for a day and type.
func (r *sessionRepository) FindOpen(ctx context.Context, date string, t domain.SessionType) (*domain.SessionRecord, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE open = 1 AND date = ? AND type = ?
		ORDER BY started_at DESC
		LIMIT 1
	`

	return r.scanSession(r.db.QueryRowContext(ctx, query, date, string(t)))
}

// ListByDateRange retrieves all records whose date key falls in the
// closed range [startDate, endDate].
func (r *sessionRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.SessionRecord, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE date >= ? AND date <= ?
		ORDER BY date, started_at
	`

	rows, err := r.db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.SessionRecord
	for rows.Next() {
		record, err := scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanSession scans a single session row, returning nil on no rows.
func (r *sessionRepository) scanSession(row *sql.Row) (*domain.SessionRecord, error) {
	var record domain.SessionRecord
	var startedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.Type,
		&record.Date,
		&startedAt,
		&record.DurationMinutes,
		&record.Completed,
		&record.Open,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if startedAt.Valid {
		record.StartedAt = &startedAt.Time
	}
	return &record, nil
}

func scanSessionRow(rows *sql.Rows) (*domain.SessionRecord, error) {
	var record domain.SessionRecord
	var startedAt sql.NullTime

	err := rows.Scan(
		&record.ID,
		&record.Type,
		&record.Date,
		&startedAt,
		&record.DurationMinutes,
		&record.Completed,
		&record.Open,
	)
	if err != nil {
		return nil, err
	}

	if startedAt.Valid {
		record.StartedAt = &startedAt.Time
	}
	return &record, nil
}
