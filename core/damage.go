package core

// DamageType classifies weapon damage for shield resistance lookup
type DamageType uint8

const (
	DamageKinetic DamageType = iota
	DamageEnergy
	DamageExplosive

	DamageTypeCount
)

func (d DamageType) String() string {
	switch d {
	case DamageKinetic:
		return "kinetic"
	case DamageEnergy:
		return "energy"
	case DamageExplosive:
		return "explosive"
	}
	return "unknown"
}
