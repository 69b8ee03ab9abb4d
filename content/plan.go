package content

import (
	"math"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/config"
	"github.com/lumenfall/stardrift/parameter"
	"github.com/lumenfall/stardrift/vmath"
)

// SystemPlan is a fully generated star system, produced off-tick and
// applied on-tick. Generation is pure: the same seed and index always
// yield the same plan
type SystemPlan struct {
	Index    int
	StarType int

	Star      BodyPlan
	Planets   []BodyPlan
	Hostiles  []HostilePlan
	Obstacles []ObstaclePlan
}

type BodyPlan struct {
	Mass         float64
	Radius       float64
	OrbitRadius  float64
	OrbitAngle   float64
	AngularSpeed float64
	Eccentricity float64
}

type HostilePlan struct {
	Class parameter.HostileClass
	X, Y  float64
}

type ObstaclePlan struct {
	Kind   component.ObstacleKind
	X, Y   float64
	VelX   float64
	VelY   float64
	Hull   float64
	Radius float64
	Score  int64
	Yield  float64
}

// GeneratePlan builds the content plan for one system. The RNG is
// seeded from the world seed and system index so revisits regenerate
// identical layouts. starType comes from the interstellar site so the
// boundary radius stays consistent across the transition
func GeneratePlan(cfg config.WorldConfig, seed uint64, index, starType int) SystemPlan {
	rng := vmath.NewFastRand(seed ^ (uint64(index)+1)*0x9e3779b97f4a7c15)

	plan := SystemPlan{
		Index:    index,
		StarType: starType,
		Star: BodyPlan{
			Mass:   2.0e6 + rng.Float64()*1.0e6,
			Radius: 300 + rng.Float64()*200,
		},
	}

	orbit := 1200.0
	for i := 0; i < cfg.Planets; i++ {
		orbit += 800 + rng.Float64()*1200
		plan.Planets = append(plan.Planets, BodyPlan{
			Mass:         5.0e4 + rng.Float64()*3.0e5,
			Radius:       40 + rng.Float64()*90,
			OrbitRadius:  orbit,
			OrbitAngle:   rng.Angle(),
			AngularSpeed: (0.02 + rng.Float64()*0.06) * signOf(rng),
			Eccentricity: rng.Float64() * 0.3,
		})
	}

	boundary := parameter.SystemBoundary(starType)
	for i := 0; i < cfg.Hostiles; i++ {
		angle := rng.Angle()
		dist := boundary * (0.2 + rng.Float64()*0.6)
		plan.Hostiles = append(plan.Hostiles, HostilePlan{
			Class: hostileClassFor(rng),
			X:     math.Cos(angle) * dist,
			Y:     math.Sin(angle) * dist,
		})
	}

	for i := 0; i < cfg.Asteroids; i++ {
		angle := rng.Angle()
		dist := boundary * (0.15 + rng.Float64()*0.7)
		plan.Obstacles = append(plan.Obstacles, ObstaclePlan{
			Kind:   component.ObstacleAsteroid,
			X:      math.Cos(angle) * dist,
			Y:      math.Sin(angle) * dist,
			Hull:   30 + rng.Float64()*50,
			Radius: 10 + rng.Float64()*25,
			Score:  20,
			Yield:  5 + rng.Float64()*15,
		})
	}

	for i := 0; i < cfg.Comets; i++ {
		angle := rng.Angle()
		dist := boundary * (0.4 + rng.Float64()*0.5)
		heading := rng.Angle()
		speed := 60 + rng.Float64()*120
		plan.Obstacles = append(plan.Obstacles, ObstaclePlan{
			Kind:   component.ObstacleComet,
			X:      math.Cos(angle) * dist,
			Y:      math.Sin(angle) * dist,
			VelX:   math.Cos(heading) * speed,
			VelY:   math.Sin(heading) * speed,
			Hull:   50 + rng.Float64()*40,
			Radius: 14 + rng.Float64()*12,
			Score:  60,
			Yield:  20 + rng.Float64()*20,
		})
	}

	for i := 0; i < cfg.Stations; i++ {
		angle := rng.Angle()
		dist := boundary * (0.25 + rng.Float64()*0.3)
		plan.Obstacles = append(plan.Obstacles, ObstaclePlan{
			Kind:   component.ObstacleStation,
			X:      math.Cos(angle) * dist,
			Y:      math.Sin(angle) * dist,
			Hull:   800,
			Radius: 60,
			Score:  1500,
		})
	}

	return plan
}

// GenerateSites lays out the interstellar map: one site per system,
// scattered on a loose ring around the origin
func GenerateSites(count int, seed uint64) []Site {
	rng := vmath.NewFastRand(seed ^ 0xd1b54a32d192ed03)
	sites := make([]Site, count)
	for i := range sites {
		angle := float64(i)/float64(count)*2*math.Pi + rng.Float64()*0.4
		dist := 200 + rng.Float64()*600
		sites[i] = Site{
			GalaxyX:  math.Cos(angle) * dist,
			GalaxyY:  math.Sin(angle) * dist,
			StarType: rng.Intn(3),
		}
	}
	return sites
}

// Site mirrors the scene resource's system entry without importing it
type Site struct {
	GalaxyX, GalaxyY float64
	StarType         int
}

func hostileClassFor(rng *vmath.FastRand) parameter.HostileClass {
	roll := rng.Float64()
	switch {
	case roll < 0.35:
		return parameter.ClassScout
	case roll < 0.70:
		return parameter.ClassFighter
	case roll < 0.85:
		return parameter.ClassHeavy
	default:
		return parameter.ClassHive
	}
}

func signOf(rng *vmath.FastRand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
