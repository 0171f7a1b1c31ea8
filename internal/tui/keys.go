package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Shorter   key.Binding
	Longer    key.Binding
	Uppercase key.Binding
	Lowercase key.Binding
	Numbers   key.Binding
	Symbols   key.Binding
	Generate  key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Shorter: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "shorter"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "longer"),
		),
		Uppercase: key.NewBinding(
			key.WithKeys("1", "u"),
			key.WithHelp("1/u", "uppercase"),
		),
		Lowercase: key.NewBinding(
			key.WithKeys("2", "w"),
			key.WithHelp("2/w", "lowercase"),
		),
		Numbers: key.NewBinding(
			key.WithKeys("3", "n"),
			key.WithHelp("3/n", "numbers"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("4", "s"),
			key.WithHelp("4/s", "symbols"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g", "enter", " "),
			key.WithHelp("g/enter", "generate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c/y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Shorter, k.Longer, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Copy},
		{k.Shorter, k.Longer},
		{k.Uppercase, k.Lowercase, k.Numbers, k.Symbols},
		{k.Help, k.Quit},
	}
}
