package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/notifier"
	"github.com/julianstephens/sipwait/internal/recorder"
	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/surfaces"
	"github.com/julianstephens/sipwait/internal/timer"
)

// Deps is everything the TUI needs. Panes only ever see Reader; writes go
// through Recorder.
type Deps struct {
	Reader     storage.Reader
	Recorder   *recorder.Recorder
	Dispatcher *surfaces.Dispatcher
	Surfaces   surfaces.Config
	// Scheduler and Sender are optional. When both are set the first main
	// pane delivers due notifications on each of its ticks.
	Scheduler *notifier.Scheduler
	Sender    notifier.Sender
}

type pane struct {
	surface surfaces.Surface
	snap    timer.Snapshot
	updates <-chan surfaces.Invalidation
}

type delayFormModel struct {
	Minutes int
}

type Model struct {
	deps       Deps
	panes      []pane
	notifyPane string
	keys       KeyMap
	help       help.Model
	form       *huh.Form
	delayForm  *delayFormModel
	status     string
	err        error
	quitting   bool
	width      int
	height     int
}

// refreshMsg is a pane's own tick.
type refreshMsg struct {
	pane string
	at   time.Time
}

// invalidatedMsg arrives when the recorder asks every surface to re-read.
type invalidatedMsg struct {
	pane string
	at   time.Time
}

type notifiedMsg struct {
	sent int
	err  error
}

func NewModel(deps Deps) Model {
	m := Model{
		deps: deps,
		keys: DefaultKeyMap(),
		help: help.New(),
	}

	now := m.now()
	for _, s := range deps.Surfaces.Surfaces {
		p := pane{surface: s}
		if deps.Dispatcher != nil {
			p.updates = deps.Dispatcher.Subscribe(s.Name, 1)
		}
		p.snap = surfaces.Read(deps.Reader, now)
		m.panes = append(m.panes, p)

		if m.notifyPane == "" && s.Kind == constants.SurfaceMain {
			m.notifyPane = s.Name
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.panes {
		cmds = append(cmds, tick(p.surface), waitForInvalidation(p.surface.Name, p.updates))
	}
	return tea.Batch(cmds...)
}

func (m Model) now() time.Time {
	if m.deps.Recorder != nil {
		return m.deps.Recorder.Now()
	}
	return time.Now()
}

func tick(s surfaces.Surface) tea.Cmd {
	name := s.Name
	return tea.Tick(s.Refresh, func(t time.Time) tea.Msg {
		return refreshMsg{pane: name, at: t}
	})
}

func waitForInvalidation(name string, ch <-chan surfaces.Invalidation) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		inv, ok := <-ch
		if !ok {
			return nil
		}
		return invalidatedMsg{pane: name, at: inv.At}
	}
}

func fireDue(s *notifier.Scheduler, sender notifier.Sender, now time.Time) tea.Cmd {
	return func() tea.Msg {
		sent, err := s.FireDue(sender, now)
		return notifiedMsg{sent: sent, err: err}
	}
}

func (m *Model) refresh(name string, now time.Time) (pane, bool) {
	for i := range m.panes {
		if m.panes[i].surface.Name == name {
			m.panes[i].snap = surfaces.Read(m.deps.Reader, now)
			return m.panes[i], true
		}
	}
	return pane{}, false
}

// Snapshot returns the last snapshot rendered by the named pane.
func (m Model) Snapshot(name string) (timer.Snapshot, bool) {
	for _, p := range m.panes {
		if p.surface.Name == name {
			return p.snap, true
		}
	}
	return timer.Snapshot{}, false
}
