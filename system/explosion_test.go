package system

import (
	"testing"
	"time"

	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
)

func TestExplosionSpawnedFromEvent(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewExplosionSystem(w))

	w.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
		X: 10, Y: 20, Radius: 100,
	})
	w.Step(testDT)

	entities := w.Components.Explosion.GetAllEntities()
	if len(entities) != 1 {
		t.Fatalf("Expected one explosion, got %d", len(entities))
	}
	ex, _ := w.Components.Explosion.GetComponent(entities[0])
	if ex.X != 10 || ex.Y != 20 || ex.Radius != 100 {
		t.Errorf("Expected spawn at (10, 20) radius 100, got %+v", ex)
	}
}

func TestExplosionExpiresAfterDuration(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewExplosionSystem(w))

	w.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{Radius: 50})

	// Halfway through the lifetime the effect is still present
	half := int(parameter.ExplosionDuration / 2 / testDT.Seconds())
	for i := 0; i < half; i++ {
		w.Step(testDT)
	}
	if got := w.Components.Explosion.CountEntities(); got != 1 {
		t.Fatalf("Expected explosion alive at half duration, got %d", got)
	}

	for i := 0; i < half+2; i++ {
		w.Step(testDT)
	}
	if got := w.Components.Explosion.CountEntities(); got != 0 {
		t.Errorf("Expected explosion expired, got %d remaining", got)
	}
}

func TestExplosionExpiresOnOversizedTick(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewExplosionSystem(w))

	w.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{Radius: 50})
	w.Step(time.Duration(float64(time.Second) * parameter.ExplosionDuration * 2))

	if got := w.Components.Explosion.CountEntities(); got != 0 {
		t.Errorf("Expected a long tick to expire the explosion, got %d", got)
	}
}
