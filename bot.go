package main

import (
	"math"
	"math/rand"
)

const (
	BotThreatRange   = 200.0
	BotThreatMargin  = 1.3 // flee from holes 30% larger
	BotHuntRange     = 300.0
	BotHuntMinRadius = 50.0 // only holes this big consider hunting
	BotHuntChance    = 0.6
	BotFarmQueryMult = 4.0 // farming grid query radius, in own radii
	BotDecisionMin   = 0.3 // seconds between decision re-evaluations
	BotDecisionMax   = 0.6
	BotWanderDrift   = 2.0 // max radians/s the wander heading changes
)

// BotState is the bot's behavioral state
type BotState int

const (
	BotFarming BotState = iota
	BotHunting
	BotFleeing
	BotWandering
)

func (s BotState) String() string {
	switch s {
	case BotFarming:
		return "farming"
	case BotHunting:
		return "hunting"
	case BotFleeing:
		return "fleeing"
	case BotWandering:
		return "wandering"
	}
	return "unknown"
}

// BotController drives one bot hole. One controller per hole slot, including
// an unused placeholder for the player slot.
type BotController struct {
	State       BotState
	Target      *Vec2 // nil when the current state has no target
	StateTimer  float64
	WanderAngle float64
	DecisionCD  float64
}

// Update re-evaluates the state machine when the decision cooldown expires
// and returns this frame's steering direction. hole is an immutable snapshot
// of the bot's own hole; holes and objects are read, never written.
func (b *BotController) Update(hole *Hole, holes []*Hole, objects []WorldObject, spatial *SpatialGrid, dt float64, rng *rand.Rand) Vec2 {
	b.StateTimer += dt
	b.DecisionCD -= dt

	if b.DecisionCD <= 0 {
		b.makeDecision(hole, holes, objects, spatial, rng)
		b.DecisionCD = BotDecisionMin + rng.Float64()*(BotDecisionMax-BotDecisionMin)
	}

	switch b.State {
	case BotFarming:
		return b.steerFarming(hole, objects, spatial)
	case BotHunting:
		return b.steerToTarget(hole)
	case BotFleeing:
		return b.steerFleeing(hole)
	default:
		return b.steerWandering(dt, rng)
	}
}

// makeDecision picks the next state in strict priority order: flee threats,
// then hunt prey, then farm objects, else wander.
func (b *BotController) makeDecision(hole *Hole, holes []*Hole, objects []WorldObject, spatial *SpatialGrid, rng *rand.Rand) {
	if threat, ok := b.findThreat(hole, holes); ok {
		b.State = BotFleeing
		b.Target = &threat
		return
	}

	if hole.Radius > BotHuntMinRadius {
		if prey, ok := b.findPrey(hole, holes); ok && rng.Float64() < BotHuntChance {
			b.State = BotHunting
			b.Target = &prey
			return
		}
	}

	if target, ok := b.findBestObject(hole, objects, spatial); ok {
		b.State = BotFarming
		b.Target = &target
	} else {
		b.State = BotWandering
		b.Target = nil
	}
}

// findThreat returns the position of the nearest living hole within threat
// range that outsizes this bot by the threat margin
func (b *BotController) findThreat(hole *Hole, holes []*Hole) (Vec2, bool) {
	bestDist := math.MaxFloat64
	var pos Vec2
	found := false
	for _, other := range holes {
		if other.ID == hole.ID || !other.Alive {
			continue
		}
		dist := Distance(hole.X, hole.Y, other.X, other.Y)
		if dist < BotThreatRange && other.Radius > hole.Radius*BotThreatMargin && dist < bestDist {
			bestDist = dist
			pos = other.Position()
			found = true
		}
	}
	return pos, found
}

// findPrey returns the position of the nearest consumable hole within hunt
// range
func (b *BotController) findPrey(hole *Hole, holes []*Hole) (Vec2, bool) {
	bestDist := math.MaxFloat64
	var pos Vec2
	found := false
	for _, other := range holes {
		if other.ID == hole.ID || !other.Alive {
			continue
		}
		if !hole.CanConsumeHole(other) {
			continue
		}
		dist := Distance(hole.X, hole.Y, other.X, other.Y)
		if dist < BotHuntRange && dist < bestDist {
			bestDist = dist
			pos = other.Position()
			found = true
		}
	}
	return pos, found
}

// findBestObject scores nearby swallowable objects by distance minus a mass
// bonus; closer and larger win (lower score wins)
func (b *BotController) findBestObject(hole *Hole, objects []WorldObject, spatial *SpatialGrid) (Vec2, bool) {
	nearby := spatial.QueryRadius(hole.X, hole.Y, hole.Radius*BotFarmQueryMult)

	bestScore := math.MaxFloat64
	var pos Vec2
	found := false
	for _, idx := range nearby {
		obj := &objects[idx]
		if obj.Consumed || !obj.CanBeSwallowed(hole.Radius) {
			continue
		}
		dist := Distance(hole.X, hole.Y, obj.X, obj.Y)
		score := dist - obj.Mass*0.1
		if score < bestScore {
			bestScore = score
			pos = vec2(obj.X, obj.Y)
			found = true
		}
	}
	return pos, found
}

// steerFarming heads for the target; with a stale target it re-queries on
// the fly. Directions under length 1 collapse to a stop so the bot does not
// twitch on top of its target.
func (b *BotController) steerFarming(hole *Hole, objects []WorldObject, spatial *SpatialGrid) Vec2 {
	if b.Target != nil {
		dir := b.Target.Sub(hole.Position())
		if dir.Length() > 1.0 {
			return dir.Normalize()
		}
	}
	if target, ok := b.findBestObject(hole, objects, spatial); ok {
		dir := target.Sub(hole.Position())
		if dir.Length() > 1.0 {
			return dir.Normalize()
		}
	}
	return Vec2{}
}

func (b *BotController) steerToTarget(hole *Hole) Vec2 {
	if b.Target != nil {
		dir := b.Target.Sub(hole.Position())
		if dir.Length() > 1.0 {
			return dir.Normalize()
		}
	}
	return Vec2{}
}

// steerFleeing moves directly away from the remembered threat position
func (b *BotController) steerFleeing(hole *Hole) Vec2 {
	if b.Target != nil {
		dir := hole.Position().Sub(*b.Target)
		if dir.Length() > 1.0 {
			return dir.Normalize()
		}
	}
	return Vec2{}
}

// steerWandering drifts the persistent heading a little each frame, giving a
// smooth random walk instead of jittery re-randomization
func (b *BotController) steerWandering(dt float64, rng *rand.Rand) Vec2 {
	b.WanderAngle += (rng.Float64() - 0.5) * BotWanderDrift * dt
	return vec2(math.Cos(b.WanderAngle), math.Sin(b.WanderAngle))
}

// BotNames is the pool of bot display names
var BotNames = []string{
	"Shadow", "Nova", "Blaze", "Storm", "Vortex",
	"Eclipse", "Thunder", "Frost", "Phoenix", "Titan",
	"Apex", "Nebula", "Raven", "Hunter", "Striker",
	"Ghost", "Raptor", "Omega", "Pulse", "Zero",
}

var botColors = []Color{
	{1.0, 0.3, 0.3}, // red
	{0.3, 1.0, 0.3}, // green
	{1.0, 1.0, 0.3}, // yellow
	{1.0, 0.3, 1.0}, // magenta
	{0.3, 1.0, 1.0}, // cyan
	{1.0, 0.6, 0.2}, // orange
	{0.6, 0.3, 1.0}, // purple
	{0.3, 0.8, 0.5}, // teal
}

// BotColor returns the color for the i-th bot
func BotColor(i int) Color {
	return botColors[i%len(botColors)]
}
