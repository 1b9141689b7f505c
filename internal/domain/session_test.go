package domain

import (
	"testing"
	"time"
)

func TestNewSessionRecord(t *testing.T) {
	startedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	rec := NewSessionRecord(SessionTypeWork, startedAt)

	if rec.ID == "" {
		t.Error("NewSessionRecord() should assign an ID")
	}
	if rec.Type != SessionTypeWork {
		t.Errorf("Type = %v, want work", rec.Type)
	}
	if rec.Date != "2025-03-14" {
		t.Errorf("Date = %q, want 2025-03-14", rec.Date)
	}
	if !rec.Open {
		t.Error("a fresh record should be open")
	}
	if rec.Completed {
		t.Error("a fresh record should not be completed")
	}
}

func TestSessionRecordFinalize(t *testing.T) {
	rec := NewSessionRecord(SessionTypeWork, time.Now())

	rec.Finalize(25, true)
	if rec.DurationMinutes != 25 {
		t.Errorf("DurationMinutes = %d, want 25", rec.DurationMinutes)
	}
	if !rec.Completed {
		t.Error("Finalize(25, true) should mark completed")
	}
	if rec.Open {
		t.Error("a finalized record should not be open")
	}

	rec = NewSessionRecord(SessionTypeWork, time.Now())
	rec.Finalize(-5, false)
	if rec.DurationMinutes != 0 {
		t.Errorf("negative duration clamped to %d, want 0", rec.DurationMinutes)
	}
	if rec.Completed {
		t.Error("Finalize(_, false) should not mark completed")
	}
}

func TestSessionTypePredicates(t *testing.T) {
	work := NewSessionRecord(SessionTypeWork, time.Now())
	short := NewSessionRecord(SessionTypeShortBreak, time.Now())
	long := NewSessionRecord(SessionTypeLongBreak, time.Now())

	if !work.IsWork() || work.IsBreak() {
		t.Error("work record misclassified")
	}
	if short.IsWork() || !short.IsBreak() {
		t.Error("short break record misclassified")
	}
	if long.IsWork() || !long.IsBreak() {
		t.Error("long break record misclassified")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	day, err := ParseDateKey("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDateKey() error = %v", err)
	}
	if got := DateKey(day); got != "2025-03-14" {
		t.Errorf("DateKey(ParseDateKey(x)) = %q, want 2025-03-14", got)
	}

	if _, err := ParseDateKey("not-a-date"); err == nil {
		t.Error("ParseDateKey() should reject malformed keys")
	}
}
