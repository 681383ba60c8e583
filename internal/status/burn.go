// Package status implements the status effects shared by every damageable
// entity: burning and puddle slow.
package status

// BurnPhase is the animation phase of a burn.
type BurnPhase int

const (
	BurnNone BurnPhase = iota
	BurnIgniting
	BurnLooping
	BurnExtinguishing
)

func (p BurnPhase) String() string {
	switch p {
	case BurnIgniting:
		return "igniting"
	case BurnLooping:
		return "looping"
	case BurnExtinguishing:
		return "extinguishing"
	default:
		return "none"
	}
}

// Burn animation timing.
const (
	BurnFrameRate      = 10.0 // frames per second
	IgniteFrames       = 4
	LoopFrames         = 8
	ExtinguishFrames   = 5
	IgniteDuration     = IgniteFrames / BurnFrameRate
	ExtinguishDuration = ExtinguishFrames / BurnFrameRate
)

// Burn is the burn state of one entity. The zero value is not burning.
type Burn struct {
	Phase BurnPhase
	Frame int

	// DPS is the damage per second dealt while the burn is active.
	DPS float64
	// Remaining is the time left before the burn is stopped. Zero means the
	// burn has no timer and loops until Stop is called.
	Remaining float64

	timer float64
}

// Active reports whether the burn deals damage, which includes extinguishing.
func (b *Burn) Active() bool {
	return b.Phase != BurnNone
}

// Start begins igniting. It is a no-op while the burn is active.
func (b *Burn) Start() {
	if b.Active() {
		return
	}
	b.Phase = BurnIgniting
	b.Frame = 0
	b.timer = 0
}

// Stop begins extinguishing. It is a no-op when inactive or already extinguishing.
func (b *Burn) Stop() {
	if b.Phase == BurnNone || b.Phase == BurnExtinguishing {
		return
	}
	b.Phase = BurnExtinguishing
	b.Frame = 0
	b.timer = 0
}

// Extinguish clears the timer and stops the burn.
func (b *Burn) Extinguish() {
	b.Remaining = 0
	b.Stop()
}

// Ignite refreshes the burn timer and damage and starts burning.
// It returns true when the burn was not active before.
func (b *Burn) Ignite(dps, duration float64) bool {
	b.DPS = dps
	b.Remaining = duration
	started := !b.Active()
	b.Start()
	return started
}

// Advance moves the animation forward by dt. Whole frames are applied at
// once, so a large dt catches up. Looping never ends on its own.
func (b *Burn) Advance(dt float64) {
	if b.Phase == BurnNone {
		return
	}
	b.timer += dt * BurnFrameRate
	if b.timer >= 1 {
		whole := int(b.timer)
		b.Frame += whole
		b.timer -= float64(whole)

		switch {
		case b.Phase == BurnIgniting && b.Frame >= IgniteFrames:
			b.Phase = BurnLooping
			b.Frame = 0
		case b.Phase == BurnExtinguishing && b.Frame >= ExtinguishFrames:
			b.Phase = BurnNone
			b.Frame = 0
			b.timer = 0
			return
		}
	}
	if b.Phase == BurnLooping {
		b.Frame %= LoopFrames
	}
}

// Tick runs one simulation step of the burn and returns the damage to apply.
// A running timer stops the burn when it expires and re-ignites a burn that
// finished extinguishing while time was still left on it.
func (b *Burn) Tick(dt float64) float64 {
	if b.Remaining > 0 {
		b.Remaining -= dt
		if b.Remaining <= 0 {
			b.Remaining = 0
			b.Stop()
		} else if b.Phase == BurnNone {
			b.Start()
		}
	}

	var dmg float64
	if b.Active() {
		dmg = b.DPS * dt
	}
	b.Advance(dt)
	return dmg
}
