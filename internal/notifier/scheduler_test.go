package notifier

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/storage/sqlite"
)

type recordingSender struct {
	sent []string
	err  error
}

func (r *recordingSender) Notify(text string) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, text)
	return nil
}

var schedNow = time.Date(2026, 7, 4, 21, 0, 0, 0, time.UTC)

func setupScheduler(t *testing.T) *Scheduler {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "sipwait.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	s := NewScheduler(store)
	s.SetClock(func() time.Time { return schedNow })
	return s
}

func TestScheduleNotification_SupersedesPrevious(t *testing.T) {
	s := setupScheduler(t)

	if err := s.ScheduleNotification(schedNow.Add(time.Hour), constants.ReadyNotificationID); err != nil {
		t.Fatalf("ScheduleNotification() error: %v", err)
	}
	if err := s.ScheduleNotification(schedNow.Add(30*time.Minute), constants.ReadyNotificationID); err != nil {
		t.Fatalf("ScheduleNotification() error: %v", err)
	}

	n, ok, err := s.Pending(constants.ReadyNotificationID)
	if err != nil || !ok {
		t.Fatalf("Pending() = (%v, %v), want a pending notification", ok, err)
	}
	if !n.FireAt.Equal(schedNow.Add(30 * time.Minute)) {
		t.Errorf("FireAt = %v, want the most recent schedule", n.FireAt)
	}
}

func TestScheduleNotification_SkipsNonFutureTimes(t *testing.T) {
	s := setupScheduler(t)

	for _, at := range []time.Time{schedNow, schedNow.Add(-time.Minute)} {
		if err := s.ScheduleNotification(at, constants.ReadyNotificationID); err != nil {
			t.Errorf("ScheduleNotification(%v) error: %v", at, err)
		}
	}

	if _, ok, _ := s.Pending(constants.ReadyNotificationID); ok {
		t.Error("expected nothing to be scheduled for past times")
	}
}

func TestCancelNotification(t *testing.T) {
	s := setupScheduler(t)

	if err := s.ScheduleNotification(schedNow.Add(time.Hour), constants.ReadyNotificationID); err != nil {
		t.Fatal(err)
	}
	if err := s.CancelNotification(constants.ReadyNotificationID); err != nil {
		t.Fatalf("CancelNotification() error: %v", err)
	}
	if err := s.CancelNotification(constants.ReadyNotificationID); err != nil {
		t.Fatalf("second CancelNotification() error: %v", err)
	}
	if _, ok, _ := s.Pending(constants.ReadyNotificationID); ok {
		t.Error("expected notification to be cancelled")
	}
}

func TestFireDue(t *testing.T) {
	s := setupScheduler(t)
	if err := s.ScheduleNotification(schedNow.Add(time.Hour), constants.ReadyNotificationID); err != nil {
		t.Fatal(err)
	}
	sender := &recordingSender{}

	sent, err := s.FireDue(sender, schedNow.Add(30*time.Minute))
	if err != nil || sent != 0 {
		t.Fatalf("FireDue() before due = (%d, %v), want (0, nil)", sent, err)
	}

	sent, err = s.FireDue(sender, schedNow.Add(time.Hour))
	if err != nil || sent != 1 {
		t.Fatalf("FireDue() when due = (%d, %v), want (1, nil)", sent, err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != constants.ReadyNotificationText {
		t.Errorf("unexpected sends: %v", sender.sent)
	}
	if _, ok, _ := s.Pending(constants.ReadyNotificationID); ok {
		t.Error("expected fired notification to be removed")
	}
}

func TestFireDue_RetriesWithinGracePeriod(t *testing.T) {
	s := setupScheduler(t)
	fireAt := schedNow.Add(time.Hour)
	if err := s.ScheduleNotification(fireAt, constants.ReadyNotificationID); err != nil {
		t.Fatal(err)
	}
	failing := &recordingSender{err: errors.New("tray down")}

	if _, err := s.FireDue(failing, fireAt.Add(time.Minute)); err != nil {
		t.Fatalf("FireDue() error: %v", err)
	}
	if _, ok, _ := s.Pending(constants.ReadyNotificationID); !ok {
		t.Fatal("expected failed notification to stay pending within grace period")
	}

	if _, err := s.FireDue(failing, fireAt.Add(constants.NotificationGracePeriod+time.Minute)); err != nil {
		t.Fatalf("FireDue() error: %v", err)
	}
	if _, ok, _ := s.Pending(constants.ReadyNotificationID); ok {
		t.Error("expected stale notification to be dropped")
	}
}
