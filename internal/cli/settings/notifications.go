package settings

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/storage"
)

type NotificationsCmd struct {
	State string `arg:"" enum:"on,off" help:"Turn ready alerts on or off."`
}

func (c *NotificationsCmd) Run(ctx *cli.Context) error {
	enable := c.State == "on"
	if err := ctx.Recorder.SetNotificationsEnabled(enable); err != nil {
		return err
	}

	switch {
	case !enable:
		fmt.Println("✓ Notifications disabled")
	case storage.LoadState(ctx.Reader()).NotificationsEnabled:
		fmt.Println("✓ Notifications enabled")
	default:
		fmt.Println("⚠️  Notifications could not be enabled: the tray companion is not running.")
		fmt.Println("   Start sipwait-tray and try again.")
	}
	return nil
}
