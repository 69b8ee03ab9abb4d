package parameter

// System execution priorities (lower runs first)
// Order per tick: content swap → motion → AI intent → projectile
// resolution → shield upkeep → explosion aging → scene boundary checks
// → death bookkeeping
const (
	PriorityContent    = 5
	PriorityMotion     = 10
	PriorityAI         = 20
	PriorityProjectile = 30
	PriorityShield     = 40
	PriorityExplosion  = 50
	PriorityScene      = 60
	PriorityDeath      = 70
)
