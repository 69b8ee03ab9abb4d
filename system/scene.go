package system

import (
	"math"
	"sync/atomic"

	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
	"github.com/lumenfall/stardrift/vmath"
)

// SceneSystem runs the region state machine: system <-> interstellar
// transitions with a cooldown to prevent boundary oscillation. World
// content for the destination system is loaded off-tick through the
// loader collaborator; the simulation never blocks on it
type SceneSystem struct {
	world *engine.World

	statTransitions *atomic.Int64

	enabled bool
}

func NewSceneSystem(world *engine.World) *SceneSystem {
	s := &SceneSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *SceneSystem) Init() {
	s.enabled = true
	s.statTransitions = s.world.Resources.Status.Ints.Get("scene.transitions")
}

func (s *SceneSystem) Name() string {
	return "scene"
}

func (s *SceneSystem) Priority() int {
	return parameter.PriorityScene
}

func (s *SceneSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *SceneSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *SceneSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()
	scene := &s.world.Resources.Scene

	if scene.Cooldown > 0 {
		scene.Cooldown -= dt
		if scene.Cooldown < 0 {
			scene.Cooldown = 0
		}
	}

	switch scene.State {
	case engine.SceneSystem:
		s.updateSystem(scene)
	case engine.SceneInterstellar:
		s.updateInterstellar(scene, dt)
	}
}

// updateSystem exits to interstellar when the player crosses the
// boundary radius of the current system's star
func (s *SceneSystem) updateSystem(scene *engine.SceneResource) {
	if scene.Cooldown > 0 {
		return
	}
	if scene.SystemIndex < 0 || scene.SystemIndex >= len(scene.Systems) {
		return
	}

	k, ok := s.world.Components.Kinetic.GetComponent(s.world.Resources.Player.Entity)
	if !ok {
		return
	}

	starX, starY := s.starPosition()
	dx := k.X - starX
	dy := k.Y - starY
	site := scene.Systems[scene.SystemIndex]
	boundary := parameter.SystemBoundary(site.StarType)
	if dx*dx+dy*dy <= boundary*boundary {
		return
	}

	// Carry the exit heading onto the map so re-entry from the opposite
	// side requires actually flying around the bubble
	exitAngle := math.Atan2(dy, dx)
	scene.InterstellarX = site.GalaxyX + math.Cos(exitAngle)*parameter.InterstellarExitOffset
	scene.InterstellarY = site.GalaxyY + math.Sin(exitAngle)*parameter.InterstellarExitOffset

	k.VelX *= parameter.TransitionVelocityScale
	k.VelY *= parameter.TransitionVelocityScale
	s.world.Components.Kinetic.SetComponent(s.world.Resources.Player.Entity, k)

	scene.State = engine.SceneInterstellar
	scene.Cooldown = parameter.TransitionCooldown
	s.statTransitions.Add(1)

	s.world.Resources.Log.Infow("scene transition",
		"from", "system",
		"to", "interstellar",
		"system", scene.SystemIndex)
	s.world.PushEvent(event.EventSceneTransition, &event.SceneTransitionPayload{
		From:        "system",
		To:          "interstellar",
		SystemIndex: scene.SystemIndex,
	})
}

// updateInterstellar moves the map marker by the scaled ship velocity and
// enters a system bubble when the marker crosses its radius
func (s *SceneSystem) updateInterstellar(scene *engine.SceneResource, dt float64) {
	playerEntity := s.world.Resources.Player.Entity
	k, ok := s.world.Components.Kinetic.GetComponent(playerEntity)
	if !ok {
		return
	}

	scene.InterstellarX += k.VelX * parameter.InterstellarSpeedScale * dt
	scene.InterstellarY += k.VelY * parameter.InterstellarSpeedScale * dt

	if scene.Cooldown > 0 {
		return
	}

	for i := range scene.Systems {
		site := &scene.Systems[i]
		distSq := vmath.DistSq(scene.InterstellarX, scene.InterstellarY, site.GalaxyX, site.GalaxyY)
		if distSq > parameter.SystemBubbleRadius*parameter.SystemBubbleRadius {
			continue
		}

		if !site.Discovered {
			site.Discovered = true
			s.world.PushEvent(event.EventNotification, &event.NotificationPayload{
				Message: "new system discovered",
			})
		}

		// Place the ship just inside the boundary along the approach
		// heading so the exit check does not retrigger immediately
		entryAngle := math.Atan2(scene.InterstellarY-site.GalaxyY, scene.InterstellarX-site.GalaxyX)
		if !vmath.IsFinite(entryAngle) {
			entryAngle = 0
		}
		k.X = math.Cos(entryAngle) * parameter.SystemEntryRadius
		k.Y = math.Sin(entryAngle) * parameter.SystemEntryRadius
		k.VelX *= parameter.TransitionVelocityScale
		k.VelY *= parameter.TransitionVelocityScale
		s.world.Components.Kinetic.SetComponent(playerEntity, k)

		scene.State = engine.SceneSystem
		scene.SystemIndex = i
		scene.Cooldown = parameter.TransitionCooldown
		s.statTransitions.Add(1)

		s.world.Resources.Log.Infow("scene transition",
			"from", "interstellar",
			"to", "system",
			"system", i)
		s.world.PushEvent(event.EventSceneTransition, &event.SceneTransitionPayload{
			From:        "interstellar",
			To:          "system",
			SystemIndex: i,
		})

		s.startLoad(i)
		return
	}
}

// startLoad kicks the async content load for the entered system. A
// second entry while a load is in flight is skipped; the tick loop
// keeps running on whatever content is present
func (s *SceneSystem) startLoad(index int) {
	loader := s.world.Resources.Loader
	if loader == nil {
		return
	}
	scene := &s.world.Resources.Scene
	if !scene.LoadPending.CompareAndSwap(false, true) {
		s.world.Resources.Log.Warnw("system load already pending", "system", index)
		return
	}
	log := s.world.Resources.Log
	go func() {
		defer scene.LoadPending.Store(false)
		if err := loader.LoadSystem(index); err != nil {
			log.Errorw("system load failed", "system", index, "error", err)
		}
	}()
}

func (s *SceneSystem) starPosition() (float64, float64) {
	for _, e := range s.world.Components.Body.GetAllEntities() {
		body, ok := s.world.Components.Body.GetComponent(e)
		if !ok || !body.Star {
			continue
		}
		if k, ok := s.world.Components.Kinetic.GetComponent(e); ok {
			return k.X, k.Y
		}
	}
	return 0, 0
}
