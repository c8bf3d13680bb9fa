// Package complication renders the smallest surface: a single glyph and the
// remaining time.
package complication

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sipwait/internal/timer"
)

var (
	readyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	waitingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// glyphs fill up as the cooldown progresses.
var glyphs = []string{"○", "◔", "◑", "◕", "●"}

func Glyph(progress float64) string {
	i := int(progress * float64(len(glyphs)-1))
	return glyphs[min(max(i, 0), len(glyphs)-1)]
}

func Render(snap timer.Snapshot) string {
	text := Glyph(snap.Progress) + " " + snap.FormattedRemaining
	if snap.CanDrink {
		return readyStyle.Render(text)
	}
	return waitingStyle.Render(text)
}
