// Package timer derives everything a surface displays from a TimerState and
// the current time. Every function here is pure, so any number of surfaces
// can call them on their own schedules without coordinating.
package timer

import (
	"fmt"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/models"
)

// IsReady reports whether the cooldown has elapsed. A state with no recorded
// drink is always ready.
func IsReady(state models.TimerState, now time.Time) bool {
	if state.LastDrinkTime == nil {
		return true
	}
	return now.Sub(*state.LastDrinkTime) >= state.Delay()
}

// Remaining returns the time left until the cooldown ends, or 0 when ready.
func Remaining(state models.TimerState, now time.Time) time.Duration {
	if IsReady(state, now) {
		return 0
	}
	return max(0, state.LastDrinkTime.Add(state.Delay()).Sub(now))
}

// Format renders a remaining duration as "Ready!", "{h}h {m}m" or "{m}m".
// Hours and minutes are truncated, never rounded.
func Format(d time.Duration) string {
	if d <= 0 {
		return constants.ReadyText
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Progress returns how far through the cooldown we are, in [0, 1].
func Progress(state models.TimerState, now time.Time) float64 {
	if IsReady(state, now) {
		return 1.0
	}
	elapsed := now.Sub(*state.LastDrinkTime)
	fraction := elapsed.Seconds() / state.Delay().Seconds()
	return min(max(fraction, 0), 1)
}
