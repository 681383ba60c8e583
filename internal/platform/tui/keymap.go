package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the in-game key bindings. Terminals report key presses
// but not releases, so held keys are inferred from auto-repeat.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	AimUp    key.Binding
	AimDown  key.Binding
	AimLeft  key.Binding
	AimRight key.Binding
	Fire     key.Binding
	Latch    key.Binding
	Switch   key.Binding
	Reload   key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Shot     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Latch, k.Switch, k.Reload, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.AimUp, k.AimDown, k.AimLeft, k.AimRight},
		{k.Fire, k.Latch, k.Switch, k.Reload},
		{k.Pause, k.Restart, k.Shot, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "right"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("up", "i"),
			key.WithHelp("up/i", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "k"),
			key.WithHelp("down/k", "aim down"),
		),
		AimLeft: key.NewBinding(
			key.WithKeys("left", "j"),
			key.WithHelp("left/j", "aim left"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "aim right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "fire"),
		),
		Latch: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "hold fire"),
		),
		Switch: key.NewBinding(
			key.WithKeys("q", "tab"),
			key.WithHelp("q/tab", "switch"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MenuKeyMap defines the key bindings for the level picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Runs   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Runs, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"), // vim-style k for up
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"), // vim-style j for down
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
