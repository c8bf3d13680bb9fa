package drinks

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/surfaces"
	"github.com/julianstephens/sipwait/internal/timer"
)

type StatusCmd struct {
	JSON bool `help:"Print status as JSON."`
}

// statusJSON is the machine-readable form of a snapshot.
type statusJSON struct {
	CanDrink             bool       `json:"can_drink"`
	Remaining            string     `json:"remaining"`
	RemainingSeconds     int64      `json:"remaining_seconds"`
	Progress             float64    `json:"progress"`
	DrinkCount           int        `json:"drink_count"`
	DelayMinutes         int        `json:"delay_minutes"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	LastDrinkTime        *time.Time `json:"last_drink_time,omitempty"`
	ReadyAt              *time.Time `json:"ready_at,omitempty"`
}

func newStatusJSON(snap timer.Snapshot) statusJSON {
	out := statusJSON{
		CanDrink:             snap.CanDrink,
		Remaining:            snap.FormattedRemaining,
		RemainingSeconds:     int64(snap.Remaining / time.Second),
		Progress:             snap.Progress,
		DrinkCount:           snap.DrinkCount,
		DelayMinutes:         snap.DelayMinutes,
		NotificationsEnabled: snap.NotificationsEnabled,
		LastDrinkTime:        snap.LastDrinkTime,
	}
	if !snap.ReadyAt.IsZero() {
		readyAt := snap.ReadyAt
		out.ReadyAt = &readyAt
	}
	return out
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	snap := surfaces.Read(ctx.Reader(), ctx.Recorder.Now())

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newStatusJSON(snap))
	}

	if snap.CanDrink {
		fmt.Printf("☕ %s\n", constants.ReadyText)
	} else {
		fmt.Printf("⏳ %s remaining (ready at %s)\n", snap.FormattedRemaining, snap.ReadyAt.Local().Format("15:04"))
	}
	fmt.Printf("  Drinks:        %d\n", snap.DrinkCount)
	fmt.Printf("  Delay:         %d min\n", snap.DelayMinutes)
	fmt.Printf("  Notifications: %v\n", snap.NotificationsEnabled)
	if snap.LastDrinkTime != nil {
		fmt.Printf("  Last drink:    %s\n", snap.LastDrinkTime.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
