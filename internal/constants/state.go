package constants

import (
	"math"
	"time"
)

const (
	// Timer state keys
	StateLastDrinkTime        = "last_drink_time"
	StateDelayMinutes         = "delay_minutes"
	StateNotificationsEnabled = "notifications_enabled"
	StateDrinkCount           = "drink_count"
	StateLastUpdateTime       = "last_update_time"

	// Default state values
	DefaultDelayMinutes         = 60
	DefaultNotificationsEnabled = true
	DefaultDrinkCount           = 0

	// MaxDelayMinutes is the longest cooldown a time.Duration can hold.
	MaxDelayMinutes = int(math.MaxInt64 / int64(time.Minute))
)
