package timer

import (
	"time"

	"github.com/julianstephens/sipwait/internal/models"
)

// Snapshot is the read-only view every surface renders from.
type Snapshot struct {
	LastDrinkTime        *time.Time
	DelayMinutes         int
	CanDrink             bool
	DrinkCount           int
	FormattedRemaining   string
	Remaining            time.Duration
	Progress             float64
	NotificationsEnabled bool
	// ReadyAt is zero when no drink has been recorded.
	ReadyAt time.Time
	Now     time.Time
}

// Read computes a Snapshot of state at now.
func Read(state models.TimerState, now time.Time) Snapshot {
	remaining := Remaining(state, now)
	snap := Snapshot{
		LastDrinkTime:        state.LastDrinkTime,
		DelayMinutes:         state.DelayMinutes,
		CanDrink:             IsReady(state, now),
		DrinkCount:           state.DrinkCount,
		FormattedRemaining:   Format(remaining),
		Remaining:            remaining,
		Progress:             Progress(state, now),
		NotificationsEnabled: state.NotificationsEnabled,
		Now:                  now,
	}
	if state.LastDrinkTime != nil {
		snap.ReadyAt = state.LastDrinkTime.Add(state.Delay())
	}
	return snap
}
