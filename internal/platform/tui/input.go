package tui

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
)

// HoldTime is how long a key counts as held after its last press or repeat.
// It has to bridge the terminal's initial auto-repeat delay.
const HoldTime = 0.35

// aimReach is how far ahead of the player keyboard aiming points.
const aimReach = 200.0

// inputState turns discrete terminal events into the continuous input the
// simulation expects. Each direction and the trigger stay held for a number
// of ticks after the last key event; mouse buttons report real releases.
type inputState struct {
	holdTicks int

	up, down, left, right int
	fire                  int
	aimDir                core.Vec2
	aimTicks              int

	latched   bool // fire held until toggled off
	mouseFire bool
	mouseAim  bool
	mouseCell [2]int

	frame core.InputFrame
}

func newInputState(tickRate int) inputState {
	if tickRate <= 0 {
		tickRate = 60
	}
	return inputState{
		holdTicks: int(math.Ceil(HoldTime * float64(tickRate))),
		frame:     core.NewInputFrame(),
	}
}

func (s *inputState) press(counter *int) {
	*counter = s.holdTicks
}

// aim points the keyboard aim along dir and drops mouse aiming.
func (s *inputState) aim(dir core.Vec2) {
	s.aimDir = dir
	s.aimTicks = s.holdTicks
	s.mouseAim = false
}

// moveDir returns the held movement direction (not normalized).
func (s *inputState) moveDir() core.Vec2 {
	var d core.Vec2
	if s.up > 0 {
		d.Y--
	}
	if s.down > 0 {
		d.Y++
	}
	if s.left > 0 {
		d.X--
	}
	if s.right > 0 {
		d.X++
	}
	return d
}

// firing reports whether the trigger is currently held.
func (s *inputState) firing() bool {
	return s.latched || s.mouseFire || s.fire > 0
}

// next builds the frame for the coming tick. toWorld maps the last mouse
// cell to a world point; origin is the player position used for keyboard
// aiming. The hold counters then decay by one tick.
func (s *inputState) next(origin core.Vec2, toWorld func(x, y int) core.Vec2) core.InputFrame {
	f := s.frame.Clone()
	f.Move = s.moveDir()
	f.FireHeld = s.firing()

	switch {
	case s.mouseAim && toWorld != nil:
		f.AimAt(toWorld(s.mouseCell[0], s.mouseCell[1]))
	case s.aimTicks > 0:
		if dir, ok := s.aimDir.Normalize(); ok {
			f.AimAt(origin.Add(dir.Scale(aimReach)))
		}
	case f.Move != (core.Vec2{}):
		if dir, ok := f.Move.Normalize(); ok {
			f.AimAt(origin.Add(dir.Scale(aimReach)))
		}
	}

	s.frame.Clear()
	for _, c := range []*int{&s.up, &s.down, &s.left, &s.right, &s.fire, &s.aimTicks} {
		if *c > 0 {
			*c--
		}
	}
	return f
}

// release drops every held key, e.g. on pause or restart.
func (s *inputState) release() {
	s.up, s.down, s.left, s.right = 0, 0, 0, 0
	s.fire, s.aimTicks = 0, 0
	s.latched, s.mouseFire = false, false
	s.frame.Clear()
}
