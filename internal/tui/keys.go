package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	about   key.Binding
	copy    key.Binding
	signOut key.Binding
	clear   key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	about:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy response")),
	signOut: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "sign out")),
	clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
}

// consoleKeys adapts keys to the help widget.
type consoleKeys struct{}

func (consoleKeys) ShortHelp() []key.Binding {
	return []key.Binding{keys.enter, keys.tab, keys.copy, keys.signOut, keys.quit}
}

func (c consoleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp(), {keys.clear}}
}
