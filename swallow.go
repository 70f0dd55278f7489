package main

import "math"

const (
	GrowthMultiplier = 0.15 // area gained per unit of consumed mass
	CombatAreaShare  = 0.5  // winner takes this share of the loser's area
	SwallowQueryMult = 2.0  // capture query radius, in hole radii
	MaxBurstCount    = 20   // particle cap per captured object
	EliminationBurst = 30   // particle count on a hole elimination
)

// ProcessSwallow starts the capture of every object the hole can take this
// frame. Capture only flips the object to Falling and fires the effects;
// growth lands later, when the fall completes. Returns the ids of newly
// captured objects.
func ProcessSwallow(hole *Hole, objects []WorldObject, spatial *SpatialGrid, vfx VfxSink) []uint32 {
	if !hole.Alive {
		return nil
	}

	var captured []uint32
	nearby := spatial.QueryRadius(hole.X, hole.Y, hole.Radius*SwallowQueryMult)
	for _, idx := range nearby {
		obj := &objects[idx]
		if obj.Consumed || obj.State == StateFalling {
			continue
		}
		if !hole.CanCaptureAt(obj.X, obj.Y, obj.Size) {
			continue
		}

		obj.StartFalling(hole.X, hole.Y, hole.ID)
		captured = append(captured, obj.ID)

		count := int(math.Ceil(obj.Size / 5.0))
		if count > MaxBurstCount {
			count = MaxBurstCount
		}
		vfx.SpawnParticles(obj.X, obj.Y, obj.Color, count)
		vfx.SpawnRipple(hole.X, hole.Y, hole.Radius, hole.Color)
	}
	return captured
}

// UpdateFallingObjects advances the fall of every object this hole captured
// and applies growth as each one lands. Growth and the score increment are
// deliberately decoupled from the capture trigger by the fall duration.
// Returns the ids of objects consumed this call.
func UpdateFallingObjects(hole *Hole, objects []WorldObject, dt float64) []uint32 {
	var consumed []uint32
	for i := range objects {
		obj := &objects[i]
		if obj.State != StateFalling || obj.Fall.HoleID != hole.ID {
			continue
		}
		if obj.UpdateFalling(dt) {
			hole.Grow(obj.Mass, GrowthMultiplier)
			consumed = append(consumed, obj.ID)
		}
	}
	return consumed
}

// ProcessHoleCombat resolves hole-vs-hole eliminations for the frame. All
// winning pairs are collected first, then applied in enumeration order
// (i ascending, then j ascending) with immediate mutation, so a hole's
// effective size can change mid-sweep; ties break by that order. Returns the
// winner's index and true when the player was the loser this frame.
func ProcessHoleCombat(holes []*Hole, playerIdx int, vfx VfxSink, allowRespawn bool, respawnTime float64) (int, bool) {
	type elimination struct {
		winner, loser int
	}
	var eliminations []elimination

	for i := 0; i < len(holes); i++ {
		for j := i + 1; j < len(holes); j++ {
			if !holes[i].Alive || !holes[j].Alive {
				continue
			}
			if !holes[i].OverlapsHole(holes[j]) {
				continue
			}
			if holes[i].CanConsumeHole(holes[j]) {
				eliminations = append(eliminations, elimination{winner: i, loser: j})
			} else if holes[j].CanConsumeHole(holes[i]) {
				eliminations = append(eliminations, elimination{winner: j, loser: i})
			}
		}
	}

	winnerIdx := -1
	playerEliminated := false
	for _, e := range eliminations {
		winner := holes[e.winner]
		loser := holes[e.loser]
		if !winner.Alive || !loser.Alive {
			continue
		}

		vfx.SpawnParticles(loser.X, loser.Y, loser.Color, EliminationBurst)
		vfx.SpawnRipple(winner.X, winner.Y, winner.Radius*1.5, winner.Color)

		winner.ConsumeHole(loser)
		if allowRespawn {
			loser.Die(respawnTime)
		} else {
			loser.Alive = false
			loser.Deaths++
		}

		if e.loser == playerIdx {
			winnerIdx = e.winner
			playerEliminated = true
		}
	}
	return winnerIdx, playerEliminated
}
