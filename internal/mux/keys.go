package mux

import "github.com/charmbracelet/bubbles/key"

// keyMap is the Normal-mode shortcut table (spec.md §4.6), expressed as
// bubbles/key bindings so both dispatch and the :help overlay read off
// a single source of truth.
type keyMap struct {
	New        key.Binding
	SplitH     key.Binding
	SplitV     key.Binding
	Close      key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	FocusUp    key.Binding
	FocusDown  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	Zoom       key.Binding
	Grid       key.Binding
	Horizontal key.Binding
	Vertical   key.Binding
	Main       key.Binding
	Sidebar    key.Binding
	Command    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new pane")),
		SplitH:     key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "split horizontal")),
		SplitV:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "split vertical")),
		Close:      key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close pane")),
		FocusNext:  key.NewBinding(key.WithKeys("ctrl+tab"), key.WithHelp("ctrl+tab", "next pane")),
		FocusPrev:  key.NewBinding(key.WithKeys("ctrl+shift+tab"), key.WithHelp("ctrl+shift+tab", "prev pane")),
		FocusUp:    key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("ctrl+up", "focus up")),
		FocusDown:  key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("ctrl+down", "focus down")),
		FocusLeft:  key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+left", "focus left")),
		FocusRight: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+right", "focus right")),
		Zoom:       key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "toggle zoom")),
		Grid:       key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "grid layout")),
		Horizontal: key.NewBinding(key.WithKeys("ctrl+shift+h"), key.WithHelp("ctrl+shift+h", "horizontal layout")),
		Vertical:   key.NewBinding(key.WithKeys("ctrl+shift+v"), key.WithHelp("ctrl+shift+v", "vertical layout")),
		Main:       key.NewBinding(key.WithKeys("ctrl+m"), key.WithHelp("ctrl+m", "main+stack layout")),
		Sidebar:    key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle sidebar")),
		Command:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command mode")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.SplitH, k.SplitV, k.Close, k.Command, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.SplitH, k.SplitV, k.Close},
		{k.FocusNext, k.FocusPrev, k.FocusUp, k.FocusDown, k.FocusLeft, k.FocusRight},
		{k.Zoom, k.Grid, k.Horizontal, k.Vertical, k.Main},
		{k.Sidebar, k.Command, k.Quit},
	}
}
