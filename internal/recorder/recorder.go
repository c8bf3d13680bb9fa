// Package recorder applies user actions to the timer state. It is the only
// writer of timer state; every action is persisted before the display
// surfaces are told to refresh.
package recorder

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/logger"
	"github.com/julianstephens/sipwait/internal/models"
	"github.com/julianstephens/sipwait/internal/storage"
)

// ErrInvalidDelay is returned by SetDelay for a delay outside
// [1, constants.MaxDelayMinutes].
var ErrInvalidDelay = errors.New("delay must be a positive number of minutes")

type Recorder struct {
	store       storage.Provider
	scheduler   NotificationScheduler
	permissions PermissionRequester
	displays    DisplayInvalidator
	clock       Clock
}

type Option func(*Recorder)

func WithScheduler(s NotificationScheduler) Option {
	return func(r *Recorder) { r.scheduler = s }
}

func WithPermissions(p PermissionRequester) Option {
	return func(r *Recorder) { r.permissions = p }
}

func WithDisplays(d DisplayInvalidator) Option {
	return func(r *Recorder) { r.displays = d }
}

func WithClock(c Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// New returns a Recorder writing to store. Ports that are not supplied
// default to no-ops.
func New(store storage.Provider, opts ...Option) *Recorder {
	r := &Recorder{
		store:       store,
		scheduler:   noopScheduler{},
		permissions: denyPermissions{},
		displays:    noopDisplays{},
		clock:       ClockFunc(time.Now),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Now returns the recorder's current time.
func (r *Recorder) Now() time.Time {
	return r.clock.Now()
}

// State returns the current timer state with defaults applied.
func (r *Recorder) State() models.TimerState {
	return storage.LoadState(r.store)
}

// RecordDrink marks a drink at now, bumps the counter and, when enabled,
// schedules the ready alert for the end of the new cooldown.
func (r *Recorder) RecordDrink(now time.Time) error {
	state := r.State()
	count := state.DrinkCount + 1

	err := r.store.SetMany(map[string]string{
		constants.StateLastDrinkTime: models.FormatTimestamp(now),
		constants.StateDrinkCount:    strconv.Itoa(count),
	})
	if err != nil {
		return fmt.Errorf("failed to record drink: %w", err)
	}

	event := models.DrinkEvent{ID: uuid.New().String(), At: now}
	if err := r.store.AddDrinkEvent(event); err != nil {
		logger.Warn("Failed to append drink history", "id", event.ID, "error", err)
	}

	if state.NotificationsEnabled {
		r.schedule(now.Add(state.Delay()))
	}
	logger.Info("Drink recorded", "count", count, "delay_minutes", state.DelayMinutes)

	r.displays.InvalidateDisplays()
	return nil
}

// ResetTimer clears the last drink so the timer reads ready. The drink
// count is left alone.
func (r *Recorder) ResetTimer() error {
	if err := r.store.Clear(constants.StateLastDrinkTime); err != nil {
		return fmt.Errorf("failed to reset timer: %w", err)
	}
	r.cancel()
	logger.Info("Timer reset")

	r.displays.InvalidateDisplays()
	return nil
}

func (r *Recorder) ResetCount() error {
	if err := r.store.Set(constants.StateDrinkCount, "0"); err != nil {
		return fmt.Errorf("failed to reset drink count: %w", err)
	}
	logger.Info("Drink count reset")

	r.displays.InvalidateDisplays()
	return nil
}

// SetDelay persists a new cooldown. A pending alert keeps its original
// fire time; call Reschedule to move it.
func (r *Recorder) SetDelay(minutes int) error {
	if minutes <= 0 || minutes > constants.MaxDelayMinutes {
		return fmt.Errorf("%w: got %d", ErrInvalidDelay, minutes)
	}
	if err := r.store.Set(constants.StateDelayMinutes, strconv.Itoa(minutes)); err != nil {
		return fmt.Errorf("failed to set delay: %w", err)
	}
	logger.Info("Delay updated", "delay_minutes", minutes)

	r.displays.InvalidateDisplays()
	return nil
}

// Reschedule replaces the pending ready alert with one computed from the
// current state. Nothing is scheduled if notifications are off or the
// timer is already ready.
func (r *Recorder) Reschedule() {
	state := r.State()
	if !state.NotificationsEnabled || state.LastDrinkTime == nil {
		r.cancel()
		return
	}
	readyAt := state.LastDrinkTime.Add(state.Delay())
	if !readyAt.After(r.Now()) {
		r.cancel()
		return
	}
	r.schedule(readyAt)
}

// SetNotificationsEnabled turns the ready alert on or off. Enabling asks
// for permission and persists whatever was granted; a denial is not an
// error. A granted enable reschedules the alert for the running cooldown.
func (r *Recorder) SetNotificationsEnabled(enabled bool) error {
	if enabled {
		enabled = r.permissions.RequestNotificationPermission()
		if !enabled {
			logger.Warn("Notification permission denied, leaving notifications off")
		}
	}

	if err := r.store.Set(constants.StateNotificationsEnabled, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("failed to update notifications setting: %w", err)
	}
	if enabled {
		r.Reschedule()
	} else {
		r.cancel()
	}
	logger.Info("Notifications updated", "enabled", enabled)

	r.displays.InvalidateDisplays()
	return nil
}

func (r *Recorder) schedule(fireAt time.Time) {
	if err := r.scheduler.ScheduleNotification(fireAt, constants.ReadyNotificationID); err != nil {
		logger.Warn("Failed to schedule ready notification", "fire_at", fireAt, "error", err)
	}
}

func (r *Recorder) cancel() {
	if err := r.scheduler.CancelNotification(constants.ReadyNotificationID); err != nil {
		logger.Warn("Failed to cancel ready notification", "error", err)
	}
}
