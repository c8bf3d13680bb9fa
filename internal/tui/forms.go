package tui

import (
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/timer"
)

// NewDelayForm builds the delay picker. minutes holds the current delay on
// entry and the chosen one on completion. A current delay outside the usual
// options is offered too so it stays selectable.
func NewDelayForm(minutes *int) *huh.Form {
	choices := slices.Clone(constants.DelayOptions)
	if *minutes > 0 && !slices.Contains(choices, *minutes) {
		choices = append(choices, *minutes)
		slices.Sort(choices)
	}

	options := make([]huh.Option[int], 0, len(choices))
	for _, m := range choices {
		options = append(options, huh.NewOption(DelayLabel(m), m))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Time between drinks").
				Options(options...).
				Value(minutes),
		),
	)
}

// DelayLabel renders a delay the same way the countdown is shown.
func DelayLabel(minutes int) string {
	label := timer.Format(time.Duration(minutes) * time.Minute)
	if minutes == constants.DefaultDelayMinutes {
		return fmt.Sprintf("%s (default)", label)
	}
	return label
}
