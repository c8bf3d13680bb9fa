package models

import (
	"time"
)

// TimerState is the single persisted timer record shared by every surface.
type TimerState struct {
	LastDrinkTime        *time.Time `json:"last_drink_time,omitempty"`  // nil means no drink recorded, ready now
	DelayMinutes         int        `json:"delay_minutes"`              // cooldown between drinks, always positive once resolved
	NotificationsEnabled bool       `json:"notifications_enabled"`      // whether a ready alert is scheduled on each drink
	DrinkCount           int        `json:"drink_count"`                // drinks recorded since the last count reset
	LastUpdateTime       *time.Time `json:"last_update_time,omitempty"` // stamped by the store on every mutation
}

// Delay returns the resolved cooldown as a duration. Non-positive values
// resolve to the default and oversized ones clamp to MaxDelayMinutes.
func (s TimerState) Delay() time.Duration {
	return time.Duration(ResolveDelayMinutes(s.DelayMinutes)) * time.Minute
}

// DrinkEvent is one entry in the drink history.
type DrinkEvent struct {
	ID string    `json:"id"`
	At time.Time `json:"at"`
}

// ScheduledNotification is a pending alert. At most one exists per ID.
type ScheduledNotification struct {
	ID        string    `json:"id"`
	FireAt    time.Time `json:"fire_at"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
