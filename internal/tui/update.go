package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/sipwait/internal/logger"
	"github.com/julianstephens/sipwait/internal/storage"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks and invalidations keep flowing while the delay form is open.
	switch msg := msg.(type) {
	case refreshMsg:
		p, ok := m.refresh(msg.pane, msg.at)
		if !ok {
			return m, nil
		}
		cmds := []tea.Cmd{tick(p.surface)}
		if msg.pane == m.notifyPane && m.deps.Scheduler != nil && m.deps.Sender != nil {
			cmds = append(cmds, fireDue(m.deps.Scheduler, m.deps.Sender, msg.at))
		}
		return m, tea.Batch(cmds...)

	case invalidatedMsg:
		p, ok := m.refresh(msg.pane, m.now())
		if !ok {
			return m, nil
		}
		return m, waitForInvalidation(p.surface.Name, p.updates)

	case notifiedMsg:
		if msg.err != nil {
			logger.Warn("Failed to deliver due notifications", "error", msg.err)
		} else if msg.sent > 0 {
			m.status = "Ready alert sent"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width / 2)
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		if m.deps.Dispatcher != nil {
			m.deps.Dispatcher.Close()
		}
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Drink):
		m.apply("Drink recorded", m.deps.Recorder.RecordDrink(m.now()))

	case key.Matches(keyMsg, m.keys.ResetTimer):
		m.apply("Timer reset", m.deps.Recorder.ResetTimer())

	case key.Matches(keyMsg, m.keys.ResetCount):
		m.apply("Drink count reset", m.deps.Recorder.ResetCount())

	case key.Matches(keyMsg, m.keys.Notifications):
		enable := !storage.LoadState(m.deps.Reader).NotificationsEnabled
		if err := m.deps.Recorder.SetNotificationsEnabled(enable); err != nil {
			m.apply("", err)
			return m, nil
		}
		switch {
		case !enable:
			m.status = "Alerts off"
		case storage.LoadState(m.deps.Reader).NotificationsEnabled:
			m.status = "Alerts on"
		default:
			m.status = "Alerts unavailable: tray companion not running"
		}

	case key.Matches(keyMsg, m.keys.Delay):
		m.delayForm = &delayFormModel{Minutes: storage.LoadState(m.deps.Reader).DelayMinutes}
		m.form = NewDelayForm(&m.delayForm.Minutes)
		if m.width > 0 {
			m.form = m.form.WithWidth(m.width / 2)
		}
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form, m.delayForm = nil, nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		minutes := m.delayForm.Minutes
		m.form, m.delayForm = nil, nil
		m.apply(fmt.Sprintf("Delay set to %s", DelayLabel(minutes)), m.deps.Recorder.SetDelay(minutes))
		return m, nil
	case huh.StateAborted:
		m.form, m.delayForm = nil, nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) apply(status string, err error) {
	if err != nil {
		logger.Error("Action failed", "error", err)
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = status
}
