package catalog

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the catalog's own bindings. Keys not listed here are
// forwarded to the story that has focus.
type KeyMap struct {
	Open   key.Binding
	Back   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default catalog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open story"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to list"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "light/dark"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp is shown while the story list has focus.
type listHelp struct{ k KeyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Open, h.k.Theme, h.k.Help, h.k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Open},
		{h.k.Theme, h.k.Help, h.k.Quit},
	}
}

// storyHelp is shown while a story has focus. Story-specific bindings come
// first, then the catalog's.
type storyHelp struct {
	k     KeyMap
	extra []key.Binding
}

func (h storyHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, h.extra...), h.k.Back, h.k.Theme, h.k.Help)
}

func (h storyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.extra,
		{h.k.Back, h.k.Theme, h.k.Help, h.k.Quit},
	}
}
