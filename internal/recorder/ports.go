package recorder

import "time"

// NotificationScheduler arranges for the ready alert to be delivered later.
// Scheduling a time that is not in the future must be a no-op.
type NotificationScheduler interface {
	ScheduleNotification(fireAt time.Time, id string) error
	CancelNotification(id string) error
}

// PermissionRequester asks the host for permission to deliver notifications.
type PermissionRequester interface {
	RequestNotificationPermission() bool
}

// DisplayInvalidator tells every surface to re-read the store.
type DisplayInvalidator interface {
	InvalidateDisplays()
}

type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type noopScheduler struct{}

func (noopScheduler) ScheduleNotification(time.Time, string) error { return nil }
func (noopScheduler) CancelNotification(string) error              { return nil }

// denyPermissions is used when no requester is wired, so enabling
// notifications without a delivery channel persists false.
type denyPermissions struct{}

func (denyPermissions) RequestNotificationPermission() bool { return false }

type noopDisplays struct{}

func (noopDisplays) InvalidateDisplays() {}
