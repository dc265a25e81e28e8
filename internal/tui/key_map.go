package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the list host.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	grab   key.Binding
	drop   key.Binding
	cancel key.Binding
	yank   key.Binding
	help   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		grab:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "grab")),
		drop:   key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space/enter", "drop")),
		cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// dragging swaps the bindings shown and matched while a drag session is open.
func (k keyMap) dragging(on bool) keyMap {
	k.grab.SetEnabled(!on)
	k.yank.SetEnabled(!on)
	k.drop.SetEnabled(on)
	k.cancel.SetEnabled(on)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.grab, k.drop, k.cancel, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.grab, k.drop, k.cancel},
		{k.yank, k.help, k.quit},
	}
}
