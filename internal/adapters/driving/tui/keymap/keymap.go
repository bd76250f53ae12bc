// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the full help line.
	Help key.Binding

	// NextTab and PrevTab switch between overview and contacts.
	NextTab key.Binding
	PrevTab key.Binding

	// Up navigates up in the contacts table.
	Up key.Binding

	// Down navigates down in the contacts table.
	Down key.Binding

	// Strength cycles the strength filter.
	Strength key.Binding

	// Dormant toggles the dormant-only filter.
	Dormant key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Strength: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "strength"),
		),
		Dormant: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dormant"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Quit, k.Help}
}

// ContactsHelp returns keybindings for the contacts tab.
func (k *KeyMap) ContactsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Strength, k.Dormant, k.NextTab, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Strength, k.Dormant},
		{k.NextTab, k.PrevTab},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
