package main

import (
	"math/rand"
	"testing"
)

func botTestSetup(objects []WorldObject) *SpatialGrid {
	grid := NewSpatialGrid()
	grid.Build(objects)
	return grid
}

func TestBotFleesThreat(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)
	threat := NewHole(2, 600, 500, "Threat", BotColor(1), false)
	threat.Radius = 100 // well over bot.Radius * 1.3

	holes := []*Hole{bot, threat}
	grid := botTestSetup(nil)

	ctrl := &BotController{}
	dir := ctrl.Update(bot, holes, nil, grid, 1.0/60.0, rng)

	if ctrl.State != BotFleeing {
		t.Fatalf("expected fleeing, got %s", ctrl.State)
	}
	// Threat is to the +X; flee direction points -X
	if dir.X >= 0 {
		t.Errorf("expected flight away from threat, got direction (%v, %v)", dir.X, dir.Y)
	}
}

func TestBotIgnoresDistantThreat(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)
	threat := NewHole(2, 1500, 500, "Threat", BotColor(1), false)
	threat.Radius = 150

	ctrl := &BotController{}
	ctrl.Update(bot, []*Hole{bot, threat}, nil, botTestSetup(nil), 1.0/60.0, rng)

	if ctrl.State == BotFleeing {
		t.Error("threat outside range should not trigger flight")
	}
}

func TestBotHuntsPrey(t *testing.T) {
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)
	bot.Radius = 80 // above the hunt minimum
	prey := NewHole(2, 600, 500, "Prey", BotColor(1), false)
	prey.Radius = 30

	holes := []*Hole{bot, prey}
	ctrl := &BotController{}

	// Hunting is probabilistic; with repeated decisions it must trigger
	hunted := false
	for seed := int64(0); seed < 20 && !hunted; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ctrl.DecisionCD = 0
		ctrl.Update(bot, holes, nil, botTestSetup(nil), 1.0/60.0, rng)
		hunted = ctrl.State == BotHunting
	}
	if !hunted {
		t.Error("bot with consumable prey in range should eventually hunt")
	}
}

func TestBotSmallNeverHunts(t *testing.T) {
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false) // radius 25
	prey := NewHole(2, 550, 500, "Prey", BotColor(1), false)
	prey.Radius = 10

	ctrl := &BotController{}
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ctrl.DecisionCD = 0
		ctrl.Update(bot, []*Hole{bot, prey}, nil, botTestSetup(nil), 1.0/60.0, rng)
		if ctrl.State == BotHunting {
			t.Fatal("small bot should never hunt")
		}
	}
}

func TestBotFarmsNearbyObjects(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	objRng := rand.New(rand.NewSource(3))
	ids := &IDAllocator{}
	objects := []WorldObject{NewWorldObject(ids, 560, 500, ObjTree, objRng)}

	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)
	ctrl := &BotController{}
	dir := ctrl.Update(bot, []*Hole{bot}, objects, botTestSetup(objects), 1.0/60.0, rng)

	if ctrl.State != BotFarming {
		t.Fatalf("expected farming, got %s", ctrl.State)
	}
	if dir.X <= 0 {
		t.Errorf("expected movement toward the object, got (%v, %v)", dir.X, dir.Y)
	}
}

func TestBotPrefersBiggerCloserObjects(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	objRng := rand.New(rand.NewSource(3))
	ids := &IDAllocator{}
	// A person to the left, a heavier car a touch farther right; the car's
	// mass bonus outweighs the extra unit of distance
	objects := []WorldObject{
		NewWorldObject(ids, 470, 500, ObjPerson, objRng),
		NewWorldObject(ids, 531, 500, ObjCar, objRng),
	}

	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)
	ctrl := &BotController{}
	ctrl.Update(bot, []*Hole{bot}, objects, botTestSetup(objects), 1.0/60.0, rng)

	if ctrl.State != BotFarming || ctrl.Target == nil {
		t.Fatal("expected a farming target")
	}
	if ctrl.Target.X != objects[1].X {
		t.Error("mass bonus should outweigh the small distance difference")
	}
}

func TestBotWandersWhenAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)

	ctrl := &BotController{}
	dir := ctrl.Update(bot, []*Hole{bot}, nil, botTestSetup(nil), 1.0/60.0, rng)

	if ctrl.State != BotWandering {
		t.Fatalf("expected wandering, got %s", ctrl.State)
	}
	if dir.Length() < 0.99 {
		t.Error("wander direction should be a unit vector")
	}
}

func TestBotDecisionCooldown(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bot := NewHole(1, 500, 500, "Bot", BotColor(0), false)

	ctrl := &BotController{}
	ctrl.Update(bot, []*Hole{bot}, nil, botTestSetup(nil), 1.0/60.0, rng)

	if ctrl.DecisionCD < BotDecisionMin-1.0/60.0 || ctrl.DecisionCD > BotDecisionMax {
		t.Errorf("decision cooldown out of range: %v", ctrl.DecisionCD)
	}

	// A threat appearing mid-cooldown is ignored until the next decision
	threat := NewHole(2, 550, 500, "Threat", BotColor(1), false)
	threat.Radius = 120
	ctrl.Update(bot, []*Hole{bot, threat}, nil, botTestSetup(nil), 1.0/60.0, rng)
	if ctrl.State == BotFleeing {
		t.Error("state should hold until the decision cooldown expires")
	}
}

func TestBotColorCycles(t *testing.T) {
	if BotColor(0) != BotColor(len(botColors)) {
		t.Error("bot colors should cycle")
	}
}
