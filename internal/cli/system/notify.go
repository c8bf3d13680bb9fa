package system

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
)

// NotifyCmd delivers due ready alerts. It is meant to be run every minute by
// cron or a systemd timer so alerts arrive even when no TUI is open.
type NotifyCmd struct {
	DryRun bool `help:"Print due notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	now := ctx.Recorder.Now()

	if c.DryRun {
		due, err := ctx.Store.GetDueNotifications(now)
		if err != nil {
			return fmt.Errorf("failed to load due notifications: %w", err)
		}
		if len(due) == 0 {
			fmt.Println("No notifications due.")
		}
		for _, n := range due {
			fmt.Printf("[DryRun] %s (due %s)\n", n.Message, n.FireAt.Local().Format("15:04"))
		}
		return nil
	}

	if _, err := ctx.Scheduler.FireDue(ctx.Notifier, now); err != nil {
		return err
	}
	return nil
}
