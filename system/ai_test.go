package system

import (
	"math"
	"testing"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/parameter"
)

func TestTransitionTable(t *testing.T) {
	s := NewAISystem(newTestWorld())
	profile := parameter.Profile(parameter.ClassScout) // evade threshold 0.5

	tests := []struct {
		name  string
		state component.AIState
		timer float64
		hull  float64
		dist  float64
		want  component.AIState
	}{
		{"Engage to evade below threshold", component.AIEngage, 0, 0.4, 400, component.AIEvade},
		{"Patrol to evade below threshold", component.AIPatrol, 0, 0.2, 2000, component.AIEvade},
		{"Evade holds inside timer gate", component.AIEvade, 1, 0.9, 2000, component.AIEvade},
		{"Evade holds below hull gate", component.AIEvade, 10, 0.4, 2000, component.AIEvade},
		{"Evade exits on both gates", component.AIEvade, 5, 0.7, 2000, component.AIEngage},
		{"Out of detection goes patrol", component.AIEngage, 0, 1.0, 1300, component.AIPatrol},
		{"Inside engage range", component.AIPatrol, 0, 1.0, 400, component.AIEngage},
		{"Detection band approaches", component.AIPatrol, 0, 1.0, 800, component.AIApproach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := component.AIComponent{State: tt.state, Timer: tt.timer}
			ship := component.ShipComponent{Hull: tt.hull, MaxHull: 1}

			s.transition(&ai, &ship, profile, tt.dist)

			if ai.State != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, ai.State)
			}
		})
	}
}

func TestTransitionDeterministic(t *testing.T) {
	s := NewAISystem(newTestWorld())
	profile := parameter.Profile(parameter.ClassFighter)

	for i := 0; i < 10; i++ {
		ai := component.AIComponent{State: component.AIApproach, Timer: 1.5}
		ship := component.ShipComponent{Hull: 0.8, MaxHull: 1}
		s.transition(&ai, &ship, profile, 450)

		if ai.State != component.AIEngage {
			t.Fatalf("Expected engage on every run, got %v at %d", ai.State, i)
		}
	}
}

func TestScoutFlipsToEvadeOnHullDrop(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewAISystem(w))

	addPlayerShip(w, 0, 0)

	scout := w.CreateEntity()
	w.Components.Kinetic.SetComponent(scout, core.Kinetic{X: 400})
	w.Components.Ship.SetComponent(scout, component.ShipComponent{
		Faction: component.FactionHostile,
		Class:   parameter.ClassScout,
		Hull:    16, // 40% of max
		MaxHull: 40,
		Mass:    80,
		Radius:  14,
	})
	w.Components.AI.SetComponent(scout, component.AIComponent{State: component.AIEngage})

	w.Step(testDT)

	ai, _ := w.Components.AI.GetComponent(scout)
	if ai.State != component.AIEvade {
		t.Errorf("Expected evade after hull drop, got %v", ai.State)
	}
}

func TestNoTargetFallsBackToPatrol(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewAISystem(w))

	scout := w.CreateEntity()
	w.Components.Kinetic.SetComponent(scout, core.Kinetic{X: 400})
	w.Components.Ship.SetComponent(scout, component.ShipComponent{
		Faction: component.FactionHostile,
		Class:   parameter.ClassScout,
		Hull:    40,
		MaxHull: 40,
		Mass:    80,
		Radius:  14,
	})
	w.Components.AI.SetComponent(scout, component.AIComponent{State: component.AIEngage})

	w.Step(testDT)

	ai, _ := w.Components.AI.GetComponent(scout)
	if ai.State != component.AIPatrol {
		t.Errorf("Expected patrol without a live target, got %v", ai.State)
	}
	if ai.Target != core.None {
		t.Errorf("Expected target handle cleared, got %d", ai.Target)
	}
}

func TestEngageFires(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewAISystem(w))

	addPlayerShip(w, 0, 0)

	fighter := w.CreateEntity()
	w.Components.Kinetic.SetComponent(fighter, core.Kinetic{X: 300})
	w.Components.Ship.SetComponent(fighter, component.ShipComponent{
		Faction:  component.FactionHostile,
		Class:    parameter.ClassFighter,
		Hull:     90,
		MaxHull:  90,
		Mass:     160,
		Radius:   18,
		Rotation: math.Pi, // already facing the player
	})
	w.Components.AI.SetComponent(fighter, component.AIComponent{})

	w.Step(testDT)

	if got := w.Resources.Status.Ints.Get("ai.shots_fired").Load(); got != 1 {
		t.Errorf("Expected one shot fired, got %d", got)
	}
	ai, _ := w.Components.AI.GetComponent(fighter)
	if ai.FireCooldown <= 0 {
		t.Error("Expected fire cooldown set after shooting")
	}
}

func TestSwarmPullsTowardFlockAndPlayer(t *testing.T) {
	w := newTestWorld()
	w.AddSystem(NewAISystem(w))

	addPlayerShip(w, 1000, 0)

	spawnHive := func(x, y float64) core.Entity {
		e := w.CreateEntity()
		w.Components.Kinetic.SetComponent(e, core.Kinetic{X: x, Y: y})
		w.Components.Ship.SetComponent(e, component.ShipComponent{
			Faction: component.FactionHostile,
			Class:   parameter.ClassHive,
			Hull:    25,
			MaxHull: 25,
			Mass:    50,
			Radius:  10,
		})
		w.Components.AI.SetComponent(e, component.AIComponent{})
		return e
	}

	straggler := spawnHive(0, 0)
	spawnHive(100, 0)
	spawnHive(100, 20)

	w.Step(testDT)

	k, _ := w.Components.Kinetic.GetComponent(straggler)
	if k.AccelX <= 0 {
		t.Errorf("Expected straggler accelerating toward flock and player, got AccelX %v", k.AccelX)
	}
	ai, _ := w.Components.AI.GetComponent(straggler)
	if ai.State != component.AISwarm {
		t.Errorf("Expected hive ships in swarm state, got %v", ai.State)
	}
}

func TestLeadTarget(t *testing.T) {
	// Stationary target: aim point is the target itself
	x, y := LeadTarget(0, 0, 100, 0, 0, 0, 500)
	if x != 100 || y != 0 {
		t.Errorf("Expected (100, 0), got (%v, %v)", x, y)
	}

	// Target crossing at 50 u/s, projectile covers 100 units in 0.2s
	x, y = LeadTarget(0, 0, 100, 0, 0, 50, 500)
	if x != 100 || math.Abs(y-10) > 1e-9 {
		t.Errorf("Expected (100, 10), got (%v, %v)", x, y)
	}

	// Degenerate projectile speed falls back to direct aim
	x, y = LeadTarget(0, 0, 100, 0, 0, 50, 0)
	if x != 100 || y != 0 {
		t.Errorf("Expected direct aim, got (%v, %v)", x, y)
	}
}
