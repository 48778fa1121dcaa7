package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the board key bindings
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Top         key.Binding
	Bottom      key.Binding
	FirstColumn key.Binding
	LastColumn  key.Binding
	Move        key.Binding
	Done        key.Binding
	ColumnLeft  key.Binding
	ColumnRight key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first card")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last card")),
		FirstColumn: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "first column")),
		LastColumn:  key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "last column")),
		Move:        key.NewBinding(key.WithKeys("m", " "), key.WithHelp("m", "move card")),
		Done:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish move")),
		ColumnLeft:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "column left")),
		ColumnRight: key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "column right")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.ColumnLeft, k.ColumnRight, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.FirstColumn, k.LastColumn},
		{k.Move, k.Done, k.ColumnLeft, k.ColumnRight},
		{k.Cancel, k.Help, k.Quit},
	}
}
