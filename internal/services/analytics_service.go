package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nihzaa/focusflow/internal/analytics"
	"github.com/nihzaa/focusflow/internal/domain"
	"github.com/nihzaa/focusflow/internal/ports"
)

// AnalyticsService computes snapshots over stored records. Requests are
// debounced: when a newer range is requested before an older one
// finishes, the older computation is abandoned with ErrSuperseded so
// only the latest result reaches the caller.
type AnalyticsService struct {
	storage ports.Storage
	now     func() time.Time
	gen     atomic.Uint64
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(storage ports.Storage) *AnalyticsService {
	return &AnalyticsService{
		storage: storage,
		now:     time.Now,
	}
}

// streakWindowDays is the trailing window loaded so streaks span more
// history than the displayed range.
const streakWindowDays = 365

// Compute derives the analytics snapshot for the closed date range
// [start, end]. The result is never persisted; it is recomputed from
// the record set on every call.
func (s *AnalyticsService) Compute(ctx context.Context, start, end time.Time) (*domain.AnalyticsSnapshot, error) {
	gen := s.gen.Add(1)

	fetchStart := start
	if windowStart := s.now().AddDate(0, 0, -streakWindowDays); windowStart.Before(fetchStart) {
		fetchStart = windowStart
	}

	records, err := s.storage.Sessions().ListByDateRange(ctx, domain.DateKey(fetchStart), domain.DateKey(end))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if s.gen.Load() != gen {
		return nil, domain.ErrSuperseded
	}

	snap := analytics.BuildSnapshot(records, start, end, s.now())
	if s.gen.Load() != gen {
		return nil, domain.ErrSuperseded
	}
	return snap, nil
}

// ComputeTrailing computes the snapshot for the trailing N days ending today.
func (s *AnalyticsService) ComputeTrailing(ctx context.Context, days int) (*domain.AnalyticsSnapshot, error) {
	if days < 1 {
		days = 1
	}
	end := s.now()
	start := end.AddDate(0, 0, -(days - 1))
	return s.Compute(ctx, start, end)
}
