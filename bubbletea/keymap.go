package bubbletea

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send  key.Binding
	Name  key.Binding
	Theme key.Binding
	Clear key.Binding
	About key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Name:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "name")),
	Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
	Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	About: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Name, k.Theme, k.Clear, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Name, k.Theme},
		{k.Clear, k.About, k.Quit},
	}
}
