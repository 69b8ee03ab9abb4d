package parameter

// HostileClass identifies a hostile ship archetype
type HostileClass uint8

const (
	ClassScout HostileClass = iota
	ClassFighter
	ClassHeavy
	ClassHive
)

func (c HostileClass) String() string {
	switch c {
	case ClassScout:
		return "scout"
	case ClassFighter:
		return "fighter"
	case ClassHeavy:
		return "heavy"
	case ClassHive:
		return "hive"
	}
	return "unknown"
}

// HostileProfile is the per-class tuning block
// Profiles are package variables so systems share one instance
type HostileProfile struct {
	Hull           float64
	Mass           float64
	Radius         float64
	EvadeThreshold float64 // hull fraction below which the ship flees
	TurnRate       float64 // radians per second
	MaxSpeed       float64
	FireCooldown   float64
	Spread         float64 // random angular spread, radians
	ProjSpeed      float64
	ProjDamage     float64
	ProjLife       float64
	ProjMass       float64
	ScoreValue     int64
	Swarms         bool // hive class flocks instead of running the FSM
}

var hostileProfiles = [...]HostileProfile{
	ClassScout: {
		Hull: 40, Mass: 80, Radius: 14,
		EvadeThreshold: 0.5, TurnRate: 4.0, MaxSpeed: 320,
		FireCooldown: 1.1, Spread: 0.03,
		ProjSpeed: 700, ProjDamage: 8, ProjLife: 2.0, ProjMass: 0.6,
		ScoreValue: 100,
	},
	ClassFighter: {
		Hull: 90, Mass: 160, Radius: 18,
		EvadeThreshold: 0.3, TurnRate: 2.8, MaxSpeed: 260,
		FireCooldown: 0.8, Spread: 0.05,
		ProjSpeed: 650, ProjDamage: 14, ProjLife: 2.2, ProjMass: 1.0,
		ScoreValue: 250,
	},
	ClassHeavy: {
		Hull: 240, Mass: 520, Radius: 30,
		EvadeThreshold: 0.15, TurnRate: 1.4, MaxSpeed: 170,
		FireCooldown: 1.6, Spread: 0.09,
		ProjSpeed: 520, ProjDamage: 30, ProjLife: 2.8, ProjMass: 2.4,
		ScoreValue: 600,
	},
	ClassHive: {
		Hull: 25, Mass: 50, Radius: 10,
		EvadeThreshold: 0.0, TurnRate: 5.0, MaxSpeed: 340,
		FireCooldown: 1.4, Spread: 0.08,
		ProjSpeed: 600, ProjDamage: 5, ProjLife: 1.6, ProjMass: 0.4,
		ScoreValue: 60,
		Swarms:     true,
	},
}

// Profile returns the shared tuning block for a hostile class
func Profile(c HostileClass) *HostileProfile {
	if int(c) >= len(hostileProfiles) {
		return &hostileProfiles[ClassFighter]
	}
	return &hostileProfiles[c]
}
