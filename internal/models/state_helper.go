package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
)

// DefaultTimerState is the state of a store that has never been written.
func DefaultTimerState() TimerState {
	return TimerState{
		DelayMinutes:         constants.DefaultDelayMinutes,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		DrinkCount:           constants.DefaultDrinkCount,
	}
}

// MapToState converts stored key/value pairs into a TimerState. It always
// returns a usable state: missing or malformed fields fall back to their
// defaults, and any parse failures are reported in the returned error.
func MapToState(data map[string]string) (TimerState, error) {
	state := DefaultTimerState()
	var errs []error

	for key, value := range data {
		switch key {
		case constants.StateLastDrinkTime:
			t, err := ParseTimestamp(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				continue
			}
			state.LastDrinkTime = &t
		case constants.StateDelayMinutes:
			n, err := strconv.Atoi(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				continue
			}
			state.DelayMinutes = n
		case constants.StateNotificationsEnabled:
			b, err := strconv.ParseBool(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				continue
			}
			state.NotificationsEnabled = b
		case constants.StateDrinkCount:
			n, err := strconv.Atoi(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				continue
			}
			state.DrinkCount = n
		case constants.StateLastUpdateTime:
			t, err := ParseTimestamp(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("parsing %s: %w", key, err))
				continue
			}
			state.LastUpdateTime = &t
		}
	}

	ApplyDefaultState(&state)
	return state, errors.Join(errs...)
}

// StateToMap converts a TimerState into key/value pairs. Absent timestamps
// are omitted; the store never persists last_update_time from a caller.
func StateToMap(state TimerState) map[string]string {
	data := map[string]string{
		constants.StateDelayMinutes:         strconv.Itoa(state.DelayMinutes),
		constants.StateNotificationsEnabled: strconv.FormatBool(state.NotificationsEnabled),
		constants.StateDrinkCount:           strconv.Itoa(state.DrinkCount),
	}
	if state.LastDrinkTime != nil {
		data[constants.StateLastDrinkTime] = FormatTimestamp(*state.LastDrinkTime)
	}
	return data
}

// ApplyDefaultState resolves out-of-range values. A stored delay of 0 means
// unset and resolves to the default.
func ApplyDefaultState(state *TimerState) {
	state.DelayMinutes = ResolveDelayMinutes(state.DelayMinutes)
	if state.DrinkCount < 0 {
		state.DrinkCount = constants.DefaultDrinkCount
	}
}

// ResolveDelayMinutes maps any stored delay onto the usable range
// [1, constants.MaxDelayMinutes].
func ResolveDelayMinutes(minutes int) int {
	switch {
	case minutes <= 0:
		return constants.DefaultDelayMinutes
	case minutes > constants.MaxDelayMinutes:
		return constants.MaxDelayMinutes
	}
	return minutes
}

// FormatTimestamp renders t in the persisted timestamp format (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

// ParseTimestamp parses a persisted timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(constants.TimestampFormat, s)
}
