package notification

import (
	"testing"

	"github.com/nihzaa/focusflow/internal/config"
	"github.com/nihzaa/focusflow/internal/domain"
)

func stubbedNotifier(cfg *config.NotificationConfig) (*Notifier, *int, *int) {
	n := New(cfg)
	notified, beeped := 0, 0
	n.notify = func(title, message, appIcon string) error {
		notified++
		return nil
	}
	n.beep = func(freq float64, duration int) error {
		beeped++
		return nil
	}
	return n, &notified, &beeped
}

func TestIntervalCompleted(t *testing.T) {
	t.Run("disabled raises nothing", func(t *testing.T) {
		n, notified, beeped := stubbedNotifier(&config.NotificationConfig{})
		n.IntervalCompleted(domain.SessionTypeWork, 25)
		if *notified != 0 || *beeped != 0 {
			t.Errorf("notified=%d beeped=%d, want 0/0", *notified, *beeped)
		}
	})

	t.Run("enabled without sound notifies only", func(t *testing.T) {
		n, notified, beeped := stubbedNotifier(&config.NotificationConfig{Enabled: true})
		n.IntervalCompleted(domain.SessionTypeWork, 25)
		if *notified != 1 {
			t.Errorf("notified = %d, want 1", *notified)
		}
		if *beeped != 0 {
			t.Errorf("beeped = %d, want 0 with sound off", *beeped)
		}
	})

	t.Run("sound flag adds the beep", func(t *testing.T) {
		n, notified, beeped := stubbedNotifier(&config.NotificationConfig{Enabled: true, Sound: true})
		n.IntervalCompleted(domain.SessionTypeShortBreak, 5)
		if *notified != 1 || *beeped != 1 {
			t.Errorf("notified=%d beeped=%d, want 1/1", *notified, *beeped)
		}
	})

	t.Run("nil config is a no-op", func(t *testing.T) {
		n, notified, _ := stubbedNotifier(nil)
		n.IntervalCompleted(domain.SessionTypeWork, 25)
		if *notified != 0 {
			t.Errorf("notified = %d, want 0", *notified)
		}
	})
}

func TestIsEnabled(t *testing.T) {
	if New(nil).IsEnabled() {
		t.Error("nil config should report disabled")
	}
	if New(&config.NotificationConfig{}).IsEnabled() {
		t.Error("default config should report disabled")
	}
	if !New(&config.NotificationConfig{Enabled: true}).IsEnabled() {
		t.Error("enabled config should report enabled")
	}
}
