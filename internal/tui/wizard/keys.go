package wizard

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the setup wizard.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Back   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "shift+tab"),
			key.WithHelp("esc", "back"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer for a step.
func (k KeyMap) ShortHelp(step Step) []key.Binding {
	if step == StepPolicy {
		return []key.Binding{k.Up, k.Down, k.Next, k.Back, k.Cancel}
	}
	return []key.Binding{k.Next, k.Cancel}
}
