package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Inc     key.Binding
	Dec     key.Binding
	IncFast key.Binding
	DecFast key.Binding
	Reset   key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next slider")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "prev slider")),
		Inc:     key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "step up")),
		Dec:     key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "step down")),
		IncFast: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "10 steps up")),
		DecFast: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "10 steps down")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Dec, k.Inc, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Dec, k.Inc, k.DecFast, k.IncFast},
		{k.Reset, k.Theme, k.Help, k.Quit},
	}
}
