package system

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/surfaces"
	"github.com/julianstephens/sipwait/internal/tui"
)

// widgetWidth is the progress bar width when a main surface is printed once.
const widgetWidth = 40

type SurfacesCmd struct{}

func (c *SurfacesCmd) Run(ctx *cli.Context) error {
	fmt.Printf("%-16s %-14s %s\n", "NAME", "KIND", "REFRESH")
	for _, s := range ctx.Surfaces.Surfaces {
		fmt.Printf("%-16s %-14s %s\n", s.Name, s.Kind, s.Refresh)
	}
	return nil
}

// WidgetCmd renders one configured surface once, for status bars and
// scripts that poll on their own.
type WidgetCmd struct {
	Name string `arg:"" help:"Name of a configured surface."`
}

func (c *WidgetCmd) Run(ctx *cli.Context) error {
	s, ok := ctx.Surfaces.Find(c.Name)
	if !ok {
		return fmt.Errorf("unknown surface %q, run 'sipwait surfaces' to list them", c.Name)
	}

	snap := surfaces.Read(ctx.Reader(), ctx.Recorder.Now())
	fmt.Println(tui.RenderSurface(s.Kind, snap, widgetWidth))
	return nil
}
