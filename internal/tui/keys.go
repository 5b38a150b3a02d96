package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate key.Binding
	Copy     key.Binding
	Longer   key.Binding
	Shorter  key.Binding
	Toggles  []key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("enter", "g", " "), key.WithHelp("enter", "generate")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		Longer:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→", "longer")),
		Shorter:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←", "shorter")),
		Toggles: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "lower")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "upper")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "digits")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "symbols")),
		},
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Shorter, k.Longer, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy, k.Shorter, k.Longer},
		k.Toggles,
		{k.Help, k.Quit},
	}
}
