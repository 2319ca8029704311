package tui

import "github.com/charmbracelet/bubbles/key"

// formKeys holds key bindings while the form pane has focus.
type formKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns the form bindings for the help bar.
func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Switch, k.Quit}
}

// FullHelp returns the form bindings grouped for expanded help.
func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit},
		{k.Switch, k.Quit},
	}
}

// listKeys holds key bindings while the list pane has focus.
type listKeys struct {
	Up      key.Binding
	Down    key.Binding
	Sort    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Refresh key.Binding
	Switch  key.Binding
	Quit    key.Binding
}

// ShortHelp returns the list bindings for the help bar.
func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.Delete, k.Refresh, k.Switch, k.Quit}
}

// FullHelp returns the list bindings grouped for expanded help.
func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Sort},
		{k.Delete, k.Confirm, k.Cancel},
		{k.Refresh, k.Switch, k.Quit},
	}
}

// armedKeys holds key bindings while a row awaits delete confirmation.
type armedKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns the armed-confirmation bindings for the help bar.
func (k armedKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns the armed-confirmation bindings grouped for expanded help.
func (k armedKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

var formKeyMap = formKeys{
	Next:   key.NewBinding(key.WithKeys("enter", "down"), key.WithHelp("enter", "next field")),
	Prev:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "prev field")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list pane")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var listKeyMap = listKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Sort:    key.NewBinding(key.WithKeys("n", "e", "p", "t"), key.WithHelp("n/e/p/t", "sort")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm delete")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel delete")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "form pane")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var armedKeyMap = armedKeys{
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm delete")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}
