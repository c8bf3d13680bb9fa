package drinks

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/surfaces"
)

type DrinkCmd struct{}

func (c *DrinkCmd) Run(ctx *cli.Context) error {
	now := ctx.Recorder.Now()
	if err := ctx.Recorder.RecordDrink(now); err != nil {
		return err
	}

	snap := surfaces.Read(ctx.Reader(), now)
	fmt.Printf("✓ Drink #%d recorded. Next one in %s (at %s)\n",
		snap.DrinkCount, snap.FormattedRemaining, snap.ReadyAt.Local().Format("15:04"))
	return nil
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Recorder.ResetTimer(); err != nil {
		return err
	}
	fmt.Println("✓ Timer reset, you're ready to drink")
	return nil
}

type ResetCountCmd struct{}

func (c *ResetCountCmd) Run(ctx *cli.Context) error {
	if err := ctx.Recorder.ResetCount(); err != nil {
		return err
	}
	fmt.Println("✓ Drink count reset to 0")
	return nil
}
