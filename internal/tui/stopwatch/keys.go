package stopwatch

import "github.com/charmbracelet/bubbles/key"

const (
	startHelp = "start"
	stopHelp  = "stop"
)

// ShortHelp returns keybindings to be shown in the mini help view. It's part of the key.Map interface
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Reset, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the key.Map interface
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Reset},
		{k.Next, k.Prev, k.Press},
		{k.Quit},
	}
}

type keyMap struct {
	StartStop key.Binding
	Reset     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Press     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		StartStop: key.NewBinding(
			key.WithKeys(" ", "space", "s"),
			key.WithHelp("space/s", startHelp),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
			key.WithDisabled(),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press button"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// sync reflects the stopwatch state in the bindings: the start/stop help
// follows the running flag and reset is offered only when there is
// something to reset.
func (k *keyMap) sync(running, canReset bool) {
	label := startHelp
	if running {
		label = stopHelp
	}
	k.StartStop.SetHelp("space/s", label)
	k.Reset.SetEnabled(canReset)
}
