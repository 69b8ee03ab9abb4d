package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/status"
	"github.com/lumenfall/stardrift/vmath"
)

// TimeResource tracks simulation time; updated once per tick by the world
type TimeResource struct {
	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration
	// Elapsed is total simulated seconds since start
	Elapsed float64
	// Frame is the authoritative tick index
	Frame int64
}

// InputResource is the per-tick control state written by the external
// input collaborator before each Step
type InputResource struct {
	Thrust   bool
	Reverse  bool
	Brake    bool
	Rotation float64 // -1..1 turn input
	Shield   bool
	Warp     bool
	Firing   bool
	Mining   bool
}

// SceneState tags the current region
type SceneState uint8

const (
	SceneSystem SceneState = iota
	SceneInterstellar
)

func (s SceneState) String() string {
	if s == SceneInterstellar {
		return "interstellar"
	}
	return "system"
}

// SystemSite is one star system on the interstellar map
type SystemSite struct {
	GalaxyX, GalaxyY float64
	StarType         int
	Discovered       bool
}

// SceneResource is the region state machine's data: current scene tag,
// system index, and the transition cooldown that prevents boundary
// oscillation. Mutated only by the scene system
type SceneResource struct {
	State       SceneState
	SystemIndex int
	Cooldown    float64

	// Player position on the interstellar map (galaxy coordinates)
	InterstellarX, InterstellarY float64

	Systems []SystemSite

	// LoadPending is set while the async world load is in flight and
	// cleared by the loader goroutine; the simulation never blocks on it
	LoadPending atomic.Bool
}

// WorldLoader is the external world-loading collaborator
// LoadSystem is invoked on its own goroutine and never awaited inline
type WorldLoader interface {
	LoadSystem(index int) error
}

// CameraResource exposes shake intensity for the render layer, which
// consumes and decays it
type CameraResource struct {
	Shake float64
}

func (c *CameraResource) AddShake(intensity float64) {
	c.Shake += intensity
	if c.Shake > 1 {
		c.Shake = 1
	}
}

// PlayerResource holds the player ship handle and session counters
type PlayerResource struct {
	Entity core.Entity
	Score  int64
	Kills  int64
	Deaths int64
	// Respawning guards the one-shot respawn scheduling
	Respawning bool
}

// Resources aggregates all world-scoped shared state. Systems receive
// the world and read only the slices they need; there is no global
type Resources struct {
	Time   TimeResource
	Input  InputResource
	Status *status.Registry
	Rng    *vmath.FastRand
	Log    *zap.SugaredLogger
	Scene  SceneResource
	Camera CameraResource
	Player PlayerResource
	Loader WorldLoader
	Events *event.EventQueue
}
