package core

// Action is a discrete input edge, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionSwitchWeapon        // Q, Tab - cycle to the next weapon
	ActionReload              // R - start a reload early
	ActionPause               // P, Escape - pause/unpause the simulation
	ActionRestart             // Enter - restart after game over
	ActionQuit                // Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwitchWeapon:
		return "SwitchWeapon"
	case ActionReload:
		return "Reload"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input consumed by the simulation for one tick.
type InputFrame struct {
	// Move is the desired movement direction. It is normalized by the
	// simulation, so any non-zero length works.
	Move Vec2

	// FireHeld is true while the trigger is down.
	FireHeld bool

	// Aim is the aim point in world coordinates.
	Aim Vec2

	// HasAim is false when the input source has no aim point this tick;
	// the player then keeps its previous facing.
	HasAim bool

	// Actions holds the action edges triggered this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AimAt sets the aim point.
func (f *InputFrame) AimAt(p Vec2) {
	f.Aim = p
	f.HasAim = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Move = Vec2{}
	f.FireHeld = false
	f.HasAim = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
