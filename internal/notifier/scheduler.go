package notifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/logger"
	"github.com/julianstephens/sipwait/internal/models"
	"github.com/julianstephens/sipwait/internal/storage"
)

// Sender delivers notification text to the user.
type Sender interface {
	Notify(text string) error
}

// notificationStore is the slice of storage.Provider the scheduler touches.
// It never reads or writes timer state.
type notificationStore interface {
	SaveScheduledNotification(models.ScheduledNotification) error
	GetScheduledNotification(id string) (models.ScheduledNotification, error)
	GetDueNotifications(now time.Time) ([]models.ScheduledNotification, error)
	DeleteScheduledNotification(id string) error
}

// Scheduler keeps pending notifications in the store so they survive the
// process that scheduled them. Saving under an existing ID replaces the
// pending one, which keeps a single outstanding ready alert.
type Scheduler struct {
	store notificationStore
	now   func() time.Time
}

func NewScheduler(store notificationStore) *Scheduler {
	return &Scheduler{
		store: store,
		now:   time.Now,
	}
}

// SetClock overrides the scheduler's notion of now.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// ScheduleNotification arranges for the ready alert to fire at fireAt.
// A fireAt that is not in the future is skipped silently.
func (s *Scheduler) ScheduleNotification(fireAt time.Time, id string) error {
	now := s.now()
	if !fireAt.After(now) {
		logger.Debug("Skipping notification for a time that has passed", "id", id, "fire_at", fireAt)
		return nil
	}
	return s.store.SaveScheduledNotification(models.ScheduledNotification{
		ID:        id,
		FireAt:    fireAt,
		Message:   constants.ReadyNotificationText,
		CreatedAt: now,
	})
}

func (s *Scheduler) CancelNotification(id string) error {
	return s.store.DeleteScheduledNotification(id)
}

// Pending returns the notification scheduled under id, if any.
func (s *Scheduler) Pending(id string) (models.ScheduledNotification, bool, error) {
	n, err := s.store.GetScheduledNotification(id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ScheduledNotification{}, false, nil
	}
	if err != nil {
		return models.ScheduledNotification{}, false, err
	}
	return n, true, nil
}

// FireDue sends every notification due at now and removes it. Failed sends
// stay pending for the next run until they are older than the grace period.
func (s *Scheduler) FireDue(sender Sender, now time.Time) (int, error) {
	due, err := s.store.GetDueNotifications(now)
	if err != nil {
		return 0, fmt.Errorf("failed to load due notifications: %w", err)
	}

	sent := 0
	for _, n := range due {
		if err := sender.Notify(n.Message); err != nil {
			if now.Sub(n.FireAt) <= constants.NotificationGracePeriod {
				logger.Warn("Notification delivery failed, will retry", "id", n.ID, "error", err)
				continue
			}
			logger.Warn("Dropping stale notification", "id", n.ID, "fire_at", n.FireAt, "error", err)
		} else {
			sent++
		}
		if err := s.store.DeleteScheduledNotification(n.ID); err != nil {
			return sent, fmt.Errorf("failed to clear notification %s: %w", n.ID, err)
		}
	}
	return sent, nil
}
