package tui

import (
	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/timer"
	"github.com/julianstephens/sipwait/internal/tui/components/complication"
	"github.com/julianstephens/sipwait/internal/tui/components/dashboard"
	"github.com/julianstephens/sipwait/internal/tui/components/widget"
)

// RenderSurface draws snap the way a surface of kind shows it.
func RenderSurface(kind constants.SurfaceKind, snap timer.Snapshot, width int) string {
	switch kind {
	case constants.SurfaceWidgetSmall:
		return widget.RenderSmall(snap)
	case constants.SurfaceWidgetMedium:
		return widget.RenderMedium(snap)
	case constants.SurfaceComplication:
		return complication.Render(snap)
	default:
		return dashboard.Render(snap, width)
	}
}
