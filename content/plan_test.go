package content

import (
	"reflect"
	"testing"

	"github.com/lumenfall/stardrift/config"
	"github.com/lumenfall/stardrift/engine"
)

func testWorldCfg() config.WorldConfig {
	return config.WorldConfig{
		Planets:   3,
		Hostiles:  5,
		Asteroids: 4,
		Comets:    2,
		Stations:  1,
	}
}

func TestGeneratePlanDeterministic(t *testing.T) {
	cfg := testWorldCfg()

	a := GeneratePlan(cfg, 42, 2, 1)
	b := GeneratePlan(cfg, 42, 2, 1)

	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical plans for identical seed and index")
	}

	c := GeneratePlan(cfg, 43, 2, 1)
	if reflect.DeepEqual(a, c) {
		t.Error("Expected different plans for different seeds")
	}
}

func TestGeneratePlanCounts(t *testing.T) {
	cfg := testWorldCfg()
	plan := GeneratePlan(cfg, 7, 0, 0)

	if len(plan.Planets) != cfg.Planets {
		t.Errorf("Expected %d planets, got %d", cfg.Planets, len(plan.Planets))
	}
	if len(plan.Hostiles) != cfg.Hostiles {
		t.Errorf("Expected %d hostiles, got %d", cfg.Hostiles, len(plan.Hostiles))
	}
	want := cfg.Asteroids + cfg.Comets + cfg.Stations
	if len(plan.Obstacles) != want {
		t.Errorf("Expected %d obstacles, got %d", want, len(plan.Obstacles))
	}
	if plan.StarType != 0 {
		t.Errorf("Expected star type carried from the site, got %d", plan.StarType)
	}
}

func TestApplyReplacesContentKeepsPlayer(t *testing.T) {
	w := engine.NewWorld(1, nil)
	cfg := testWorldCfg()

	player := SpawnPlayer(w, false)
	Apply(w, GeneratePlan(cfg, 7, 0, 0))

	shipsBefore := w.Components.Ship.CountEntities()
	if shipsBefore != cfg.Hostiles+1 {
		t.Fatalf("Expected %d ships, got %d", cfg.Hostiles+1, shipsBefore)
	}

	Apply(w, GeneratePlan(cfg, 7, 1, 2))

	if !w.Components.Ship.HasEntity(player) {
		t.Error("Expected player to survive the swap")
	}
	if got := w.Components.Ship.CountEntities(); got != cfg.Hostiles+1 {
		t.Errorf("Expected %d ships after swap, got %d", cfg.Hostiles+1, got)
	}
	if got := w.Components.Obstacle.CountEntities(); got != cfg.Asteroids+cfg.Comets+cfg.Stations {
		t.Errorf("Expected obstacles replaced, got %d", got)
	}

	stars := 0
	for _, e := range w.Components.Body.GetAllEntities() {
		if body, ok := w.Components.Body.GetComponent(e); ok && body.Star {
			stars++
		}
	}
	if stars != 1 {
		t.Errorf("Expected exactly one star, got %d", stars)
	}
}

func TestLoaderParksPlanForPickup(t *testing.T) {
	sites := GenerateSites(3, 11)
	loader := NewLoader(testWorldCfg(), 11, sites)

	if _, ok := loader.TakePlan(); ok {
		t.Fatal("Expected no plan before loading")
	}

	if err := loader.LoadSystem(1); err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}

	plan, ok := loader.TakePlan()
	if !ok {
		t.Fatal("Expected a parked plan")
	}
	if plan.Index != 1 {
		t.Errorf("Expected plan for system 1, got %d", plan.Index)
	}
	if plan.StarType != sites[1].StarType {
		t.Errorf("Expected star type %d from the site, got %d", sites[1].StarType, plan.StarType)
	}

	if _, ok := loader.TakePlan(); ok {
		t.Error("Expected plan cleared after pickup")
	}
}

func TestGenerateSitesDeterministic(t *testing.T) {
	a := GenerateSites(5, 99)
	b := GenerateSites(5, 99)

	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical maps for identical seeds")
	}
	if len(a) != 5 {
		t.Errorf("Expected 5 sites, got %d", len(a))
	}
}
