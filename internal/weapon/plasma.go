package weapon

// Plasma parameters.
const (
	PlasmaName         = "plasma"
	PlasmaCooldown     = 1.0
	PlasmaBlobSpeed    = 400.0
	PlasmaBlobLifetime = 1.0
	PlasmaDamage       = 50.0

	PuddleRadius   = 50.0
	PuddleDPS      = 10.0
	PuddleDuration = 5.0
	PuddleSlow     = 0.5
)

// Plasma fires one slow blob per trigger press. Blobs leave a damaging,
// slowing puddle wherever they end.
type Plasma struct {
	trigger
	noAmmo
	noFuel
	fullSpeed

	cooldown float64
}

// NewPlasma returns a ready plasma cannon.
func NewPlasma() *Plasma {
	return &Plasma{trigger: newTrigger()}
}

func (p *Plasma) Name() string { return PlasmaName }

func (p *Plasma) State() string {
	if p.cooldown > 0 {
		return "charging"
	}
	return "ready"
}

func (p *Plasma) Update(dt float64) {
	p.cooldown = max(0, p.cooldown-dt)
}

func (p *Plasma) Fire(in FireInput, out *Shots) bool {
	if p.cooldown > 0 {
		return false
	}
	dir, ok := in.Aim.Sub(in.Origin).Normalize()
	if !ok || !p.pull() {
		return false
	}
	p.cooldown = PlasmaCooldown
	out.Blobs = append(out.Blobs, NewBlob(in.Origin, dir))
	return true
}
