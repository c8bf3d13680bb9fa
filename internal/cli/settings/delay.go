package settings

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/tui"
)

type DelayCmd struct {
	Minutes    *int `arg:"" optional:"" help:"Minutes between drinks. Omit to pick from a list."`
	Reschedule bool `help:"Move a pending ready alert to match the new delay."`
}

func (c *DelayCmd) Run(ctx *cli.Context) error {
	var minutes int
	if c.Minutes != nil {
		minutes = *c.Minutes
	} else {
		minutes = storage.LoadState(ctx.Reader()).DelayMinutes
		if err := tui.NewDelayForm(&minutes).Run(); err != nil {
			return fmt.Errorf("delay selection cancelled: %w", err)
		}
	}

	if err := ctx.Recorder.SetDelay(minutes); err != nil {
		return err
	}
	if c.Reschedule {
		ctx.Recorder.Reschedule()
	}
	fmt.Printf("✓ Delay set to %s\n", tui.DelayLabel(minutes))
	return nil
}
