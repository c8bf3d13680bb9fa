package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/sipwait/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.form.View(),
			paneTitleStyle.Render("esc to cancel"),
		))
	}

	var mains, others []string
	for _, p := range m.panes {
		width := m.width - 12
		body := RenderSurface(p.surface.Kind, p.snap, width)
		title := paneTitleStyle.Render(fmt.Sprintf("%s · every %s", p.surface.Name, p.surface.Refresh))
		rendered := paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))

		if p.surface.Kind == constants.SurfaceMain {
			mains = append(mains, rendered)
		} else {
			others = append(others, rendered)
		}
	}

	sections := append([]string{}, mains...)
	if len(others) > 0 {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, others...))
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render("Error: "+m.err.Error()))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
