package main

import "github.com/charmbracelet/bubbles/key"

// demoKeys holds the dashboard key bindings.
type demoKeys struct {
	PerItem  key.Binding
	Palette  key.Binding
	Gradient key.Binding
	Random   key.Binding
	Explode  key.Binding
	Pause    key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k demoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PerItem, k.Palette, k.Gradient, k.Random, k.Explode, k.Pause, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k demoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PerItem, k.Palette, k.Gradient, k.Random},
		{k.Explode, k.Pause, k.Quit},
	}
}

// DemoKeyMap returns the dashboard key bindings.
func DemoKeyMap() demoKeys {
	return demoKeys{
		PerItem: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "per-item colors"),
		),
		Palette: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "palette colors"),
		),
		Gradient: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "gradient colors"),
		),
		Random: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "random colors"),
		),
		Explode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explode largest"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause rotation"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
