package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.NewModel(tui.Deps{
		Reader:     ctx.Reader(),
		Recorder:   ctx.Recorder,
		Dispatcher: ctx.Dispatcher,
		Surfaces:   ctx.Surfaces,
		Scheduler:  ctx.Scheduler,
		Sender:     ctx.Notifier,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
