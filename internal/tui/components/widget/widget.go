package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sipwait/internal/timer"
)

const mediumBarWidth = 24

var (
	readyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	waitingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func status(snap timer.Snapshot) string {
	if snap.CanDrink {
		return readyStyle.Render(snap.FormattedRemaining)
	}
	return waitingStyle.Render(snap.FormattedRemaining)
}

// RenderSmall shows only the remaining time and the drink count.
func RenderSmall(snap timer.Snapshot) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		status(snap),
		mutedStyle.Render(fmt.Sprintf("%d today", snap.DrinkCount)),
	)
}

// RenderMedium adds a progress bar and the configured delay.
func RenderMedium(snap timer.Snapshot) string {
	bar := progress.New(progress.WithSolidFill("62"))
	bar.Width = mediumBarWidth

	return lipgloss.JoinVertical(lipgloss.Left,
		status(snap),
		bar.ViewAs(snap.Progress),
		mutedStyle.Render(fmt.Sprintf("%d drinks · every %dm", snap.DrinkCount, snap.DelayMinutes)),
	)
}
