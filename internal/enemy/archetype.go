package enemy

import "github.com/vovakirdan/infestation/internal/entity"

// Archetype holds the fixed parameters of one enemy kind. Behavior is chosen
// by Kind in Update; the table only carries numbers and a few switches.
type Archetype struct {
	Kind entity.Kind

	Health float64
	Speed  float64
	Size   float64
	Damage float64

	DetectRange float64
	AttackRange float64
	Windup      float64
	AttackTime  float64
	Recover     float64
	LungeSpeed  float64
	Cooldown    float64 // after an attack, or between shots

	// WanderFactor scales Speed while wandering.
	WanderFactor float64
	// WanderMin and WanderMax bound the time between heading changes.
	WanderMin, WanderMax float64

	// AimAtWindupEnd samples the lunge direction when the windup finishes
	// instead of when it starts.
	AimAtWindupEnd bool

	Initial State
}

// Tank and stalker extras.
const (
	ChargeRange        = 300.0
	ChargeSpeed        = 500.0
	ChargePrep         = 0.5
	ChargeDuration     = 1.0
	ChargeDamage       = 25.0
	TankLoseInterest   = 1.5 // multiple of DetectRange
	TankTurnChance     = 0.01
	StalkerConeDegrees = 45.0
	StalkerSafeDist    = 500.0
	StalkerStalkFactor = 0.7
	StalkerOpaqueDist  = 100.0
	StalkerHiddenDist  = 200.0
)

// Flyer and larva extras.
const (
	AcidSpeed       = 360.0
	AcidLifetime    = 3.0
	AcidDamage      = 8.0
	AcidSize        = 10.0
	FlyDeathFrames  = 6
	FlyDeathFrame   = 0.15 // seconds per frame
	FlyLarvae       = 4
	FlyLarvaMinDist = 20.0
	FlyLarvaMaxDist = 50.0
	FlyDriftJitter  = 0.5
	LarvaPlaceSize  = 24.0
	LarvaDeathTime  = 0.3
	LarvaMaxLunge   = 2.0
)

// Brood extras.
const (
	BroodMinSpawn   = 4
	BroodMaxSpawn   = 6
	BroodScatter    = 40.0
	RoachlingMinFor = 1.0
	RoachlingMaxFor = 2.5
	RoachlingFlee   = 1.0
)

var archetypes = map[entity.Kind]Archetype{
	entity.KindRat: {
		Kind: entity.KindRat, Health: 30, Speed: 180, Size: 20, Damage: 5,
		DetectRange: 300, AttackRange: 45, Windup: 0.35, AttackTime: 0.25, Recover: 0.6,
		LungeSpeed: 280, Cooldown: 0.8,
		WanderFactor: 0.4, WanderMin: 1.5, WanderMax: 3.0,
		AimAtWindupEnd: true,
		Initial:        StateWander,
	},
	entity.KindBedbug: {
		Kind: entity.KindBedbug, Health: 100, Speed: 180, Size: 30, Damage: 15,
		DetectRange: 1000, AttackRange: 45, Windup: 0.35, AttackTime: 0.25, Recover: 0.6,
		LungeSpeed: 450, Cooldown: 1.2,
		Initial: StateIdle,
	},
	entity.KindMightyMite: {
		Kind: entity.KindMightyMite, Health: 400, Speed: 70, Size: 50, Damage: ChargeDamage,
		DetectRange: 700, AttackRange: ChargeRange, Windup: ChargePrep, AttackTime: ChargeDuration,
		Recover: 1.5, LungeSpeed: ChargeSpeed,
		WanderFactor: 0.25,
		Initial:      StateIdle,
	},
	entity.KindBroodFly: {
		Kind: entity.KindBroodFly, Health: 100, Speed: 120, Size: 40, Damage: AcidDamage,
		DetectRange: 600, Cooldown: 2.2,
		WanderFactor: 0.3, WanderMin: 1.0, WanderMax: 2.2,
		Initial: StateDrift,
	},
	entity.KindLarva: {
		Kind: entity.KindLarva, Health: 20, Speed: 100, Size: 20, Damage: 4,
		DetectRange: 100, Windup: 0.75, LungeSpeed: 200,
		Initial: StateChase,
	},
	entity.KindBroodRoach: {
		Kind: entity.KindBroodRoach, Health: 120, Speed: 90, Size: 40, Damage: 8,
		DetectRange: 400, AttackRange: 50, Windup: 0.4, AttackTime: 0.35, Recover: 0.6,
		LungeSpeed: 160, Cooldown: 1.0,
		WanderFactor: 0.4, WanderMin: 1.5, WanderMax: 3.0,
		Initial: StateWander,
	},
	entity.KindRoachling: {
		Kind: entity.KindRoachling, Health: 15, Speed: 230, Size: 15, Damage: 3,
		Initial: StateAttack,
	},
}

// Lookup returns the archetype for kind.
func Lookup(kind entity.Kind) (Archetype, bool) {
	a, ok := archetypes[kind]
	return a, ok
}

// Kinds lists every enemy kind in a stable order.
func Kinds() []entity.Kind {
	return []entity.Kind{
		entity.KindRat,
		entity.KindBedbug,
		entity.KindMightyMite,
		entity.KindBroodFly,
		entity.KindLarva,
		entity.KindBroodRoach,
		entity.KindRoachling,
	}
}
