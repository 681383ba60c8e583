package weapon

// Rifle parameters.
const (
	RifleName     = "rifle"
	RifleCooldown = 0.5
	RifleSpeed    = 1000.0
	RifleDamage   = 40.0
	RiflePierce   = 3
	RifleLifetime = 2.0
)

// Rifle is semi-automatic: one piercing bullet per trigger press.
type Rifle struct {
	trigger
	noAmmo
	noFuel
	fullSpeed

	cooldown float64
}

// NewRifle returns a ready rifle.
func NewRifle() *Rifle {
	return &Rifle{trigger: newTrigger()}
}

func (r *Rifle) Name() string { return RifleName }

func (r *Rifle) State() string {
	if r.cooldown > 0 {
		return "cooldown"
	}
	return "ready"
}

func (r *Rifle) Update(dt float64) {
	r.cooldown = max(0, r.cooldown-dt)
}

func (r *Rifle) Fire(in FireInput, out *Shots) bool {
	if r.cooldown > 0 {
		return false
	}
	dir, ok := in.Aim.Sub(in.Origin).Normalize()
	if !ok || !r.pull() {
		return false
	}
	r.cooldown = RifleCooldown
	out.Bullets = append(out.Bullets,
		NewBullet(in.Origin, dir, RifleSpeed, RifleDamage, RiflePierce, RifleLifetime, RifleName))
	return true
}
