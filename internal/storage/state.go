package storage

import (
	"github.com/julianstephens/sipwait/internal/logger"
	"github.com/julianstephens/sipwait/internal/models"
)

// LoadState reads the timer state through r. It never fails: an unreadable
// store yields the default state and malformed fields fall back to their
// defaults, both logged.
func LoadState(r Reader) models.TimerState {
	data, err := r.GetAll()
	if err != nil {
		logger.Warn("Timer state unavailable, using defaults", "error", err)
		return models.DefaultTimerState()
	}

	state, err := models.MapToState(data)
	if err != nil {
		logger.Warn("Ignoring malformed timer state values", "error", err)
	}
	return state
}
