// Package dashboard renders the main surface: full status, progress and
// counters.
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sipwait/internal/timer"
)

const minBarWidth = 20

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42"))

	waitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render draws the main surface for snap. width is the space available for
// the progress bar.
func Render(snap timer.Snapshot, width int) string {
	status := waitingStyle.Render(snap.FormattedRemaining)
	if snap.CanDrink {
		status = readyStyle.Render(snap.FormattedRemaining)
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = max(width, minBarWidth)

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("sipwait"),
		status,
		bar.ViewAs(snap.Progress),
		detailStyle.Render(Details(snap)),
	)
}

// Details is the one-line summary under the progress bar.
func Details(snap timer.Snapshot) string {
	notifications := "off"
	if snap.NotificationsEnabled {
		notifications = "on"
	}
	line := fmt.Sprintf("%d drinks · every %dm · alerts %s", snap.DrinkCount, snap.DelayMinutes, notifications)
	if !snap.CanDrink && !snap.ReadyAt.IsZero() {
		line += fmt.Sprintf(" · ready at %s", snap.ReadyAt.Local().Format("15:04"))
	}
	return line
}
