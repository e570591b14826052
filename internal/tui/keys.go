package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Run       key.Binding
	Delete    key.Binding
	Update    key.Binding
	Refresh   key.Binding
	Search    key.Binding
	Submit    key.Binding
	Install   key.Binding
	Open      key.Binding
	Filter    key.Binding
	Back      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "run"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Update: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update apps"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search flathub"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Install: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter/i", "install"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "flathub page"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		h := b.Help()
		if i > 0 {
			out += "  "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}
