package component

// ObstacleKind classifies damageable non-ship entities
// The resolver checks categories in fixed priority order:
// ships, then asteroids, then comets, then stations
type ObstacleKind uint8

const (
	ObstacleAsteroid ObstacleKind = iota
	ObstacleComet
	ObstacleStation
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleAsteroid:
		return "asteroid"
	case ObstacleComet:
		return "comet"
	case ObstacleStation:
		return "station"
	}
	return "unknown"
}

// ObstacleComponent is a destructible obstacle with bare hull (no shields)
type ObstacleComponent struct {
	Kind       ObstacleKind
	Hull       float64
	Radius     float64
	ScoreValue int64
	// Resources granted to the player on destruction or mining
	Yield float64
}
