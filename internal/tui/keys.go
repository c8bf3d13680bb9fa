package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Drink         key.Binding
	ResetTimer    key.Binding
	ResetCount    key.Binding
	Delay         key.Binding
	Notifications key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drink, k.Delay, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Drink, k.ResetTimer, k.ResetCount},
		{k.Delay, k.Notifications},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Drink: key.NewBinding(
			key.WithKeys("d", " "),
			key.WithHelp("d", "drink"),
		),
		ResetTimer: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
		ResetCount: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reset count"),
		),
		Delay: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "change delay"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle alerts"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
