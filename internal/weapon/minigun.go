package weapon

import "github.com/vovakirdan/infestation/internal/core"

// Minigun parameters.
const (
	MinigunName         = "minigun"
	MinigunBaseInterval = 0.25
	MinigunMinInterval  = 0.06
	MinigunSpinUp       = 1.5
	MinigunSpinDown     = 0.6
	MinigunAmmo         = 150
	MinigunReload       = 2.5
	MinigunSpeed        = 600.0
	MinigunDamage       = 10.0
	MinigunPierce       = 1
	MinigunLifetime     = 2.0
	MinigunSpread       = 0.05
	// MinigunSpinPenalty is the movement slowdown at full spin.
	MinigunSpinPenalty = 0.6
	// MinigunReloadSlow scales movement while reloading.
	MinigunReloadSlow = 0.5
)

const timeEps = 1e-9

// Minigun fires while held. Its rate climbs with spin and it reloads
// automatically when the magazine runs dry.
type Minigun struct {
	noFuel

	Spin        float64
	ammo        int
	reloading   bool
	reloadTimer float64
	fireTimer   float64
	held        bool
}

// NewMinigun returns a loaded, stopped minigun.
func NewMinigun() *Minigun {
	return &Minigun{ammo: MinigunAmmo}
}

func (m *Minigun) Name() string { return MinigunName }

func (m *Minigun) State() string {
	switch {
	case m.reloading:
		return "reloading"
	case m.held:
		return "spinning"
	case m.Spin > 0:
		return "spinning_down"
	default:
		return "idle"
	}
}

// Interval is the time between shots at the current spin.
func (m *Minigun) Interval() float64 {
	return core.Lerp(MinigunBaseInterval, MinigunMinInterval, m.Spin)
}

func (m *Minigun) Update(dt float64) {
	if m.held {
		m.Spin = min(1, m.Spin+dt/MinigunSpinUp)
	} else {
		m.Spin = max(0, m.Spin-dt/MinigunSpinDown)
	}
	m.fireTimer = max(0, m.fireTimer-dt)

	if m.reloading {
		m.reloadTimer -= dt
		if m.reloadTimer <= timeEps {
			m.reloading = false
			m.reloadTimer = 0
			m.ammo = MinigunAmmo
		}
	}
}

func (m *Minigun) Fire(in FireInput, out *Shots) bool {
	m.held = true
	if m.reloading {
		return false
	}
	if m.ammo <= 0 {
		m.Reload()
		return false
	}
	if m.fireTimer > timeEps {
		return false
	}
	dir, ok := in.Aim.Sub(in.Origin).Normalize()
	if !ok {
		return false
	}
	if in.Rng != nil {
		dir = dir.Rotate((in.Rng.Float64()*2 - 1) * MinigunSpread)
	}

	out.Bullets = append(out.Bullets,
		NewBullet(in.Origin, dir, MinigunSpeed, MinigunDamage, MinigunPierce, MinigunLifetime, MinigunName))
	m.ammo--
	m.fireTimer = m.Interval()
	if m.ammo == 0 {
		m.Reload()
	}
	return true
}

// ResetTrigger lets the barrel spin down.
func (m *Minigun) ResetTrigger() {
	m.held = false
}

func (m *Minigun) Ammo() (int, int) { return m.ammo, MinigunAmmo }

func (m *Minigun) Reloading() bool { return m.reloading }

// Reload starts a reload unless one is running or the magazine is full.
func (m *Minigun) Reload() bool {
	if m.reloading || m.ammo >= MinigunAmmo {
		return false
	}
	m.reloading = true
	m.reloadTimer = MinigunReload
	return true
}

func (m *Minigun) MoveFactor() float64 {
	f := 1 - MinigunSpinPenalty*m.Spin
	if m.reloading {
		f *= MinigunReloadSlow
	}
	return f
}
