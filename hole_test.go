package main

import (
	"math"
	"testing"
)

func TestNewHoleInitialSize(t *testing.T) {
	h := NewHole(1, 500, 500, "Tester", playerColor, true)
	if h.Radius != InitialHoleRadius {
		t.Errorf("expected radius %v, got %v", InitialHoleRadius, h.Radius)
	}
	if !h.Alive {
		t.Error("new hole should be alive")
	}
	wantArea := math.Pi * InitialHoleRadius * InitialHoleRadius
	if math.Abs(h.Area-wantArea) > 1e-9 {
		t.Errorf("expected area %v, got %v", wantArea, h.Area)
	}
}

func TestHoleGrow(t *testing.T) {
	h := NewHole(1, 500, 500, "Tester", playerColor, true)
	r0 := h.Radius

	h.Grow(100, GrowthMultiplier)

	if h.Radius <= r0 {
		t.Errorf("radius should grow, was %v now %v", r0, h.Radius)
	}
	if h.Score != 1 {
		t.Errorf("expected score 1, got %d", h.Score)
	}

	// Area gain is mass * multiplier
	wantArea := math.Pi*r0*r0 + 100*GrowthMultiplier
	if math.Abs(h.Area-wantArea) > 1e-9 {
		t.Errorf("expected area %v, got %v", wantArea, h.Area)
	}
}

func TestHoleRadiusCap(t *testing.T) {
	h := NewHole(1, 500, 500, "Tester", playerColor, true)
	h.Grow(1e9, GrowthMultiplier)
	if h.Radius != MaxHoleRadius {
		t.Errorf("radius should cap at %v, got %v", MaxHoleRadius, h.Radius)
	}
	// Area keeps accumulating past the cap
	h2 := NewHole(2, 500, 500, "Other", playerColor, false)
	h2.Grow(1e9, GrowthMultiplier)
	h2.Grow(1e9, GrowthMultiplier)
	if h2.Area <= h.Area {
		t.Error("area should keep growing past the radius cap")
	}
}

func TestCanConsumeHoleMargin(t *testing.T) {
	big := NewHole(1, 0, 0, "Big", playerColor, false)
	small := NewHole(2, 0, 0, "Small", playerColor, false)
	big.Radius = 100
	small.Radius = 70

	if !big.CanConsumeHole(small) {
		t.Error("100 should consume 70 (needs >84)")
	}
	if small.CanConsumeHole(big) {
		t.Error("70 should not consume 100")
	}

	// Just under the margin
	small.Radius = 85
	if big.CanConsumeHole(small) {
		t.Error("100 should not consume 85 (needs >102)")
	}
}

func TestCanConsumeHoleInvincible(t *testing.T) {
	big := NewHole(1, 0, 0, "Big", playerColor, false)
	small := NewHole(2, 0, 0, "Small", playerColor, false)
	big.Radius = 100
	small.Radius = 50
	small.Invincible = 0.5

	if big.CanConsumeHole(small) {
		t.Error("invincible hole should not be consumable")
	}
}

func TestOverlapsHole(t *testing.T) {
	a := NewHole(1, 0, 0, "A", playerColor, false)
	b := NewHole(2, 0, 0, "B", playerColor, false)
	a.Radius = 100
	b.Radius = 70

	// Threshold is (100+70)*0.6 = 102
	b.X = 50
	if !a.OverlapsHole(b) {
		t.Error("holes at distance 50 should overlap")
	}
	b.X = 110
	if a.OverlapsHole(b) {
		t.Error("holes at distance 110 should not overlap")
	}
}

func TestConsumeHoleTakesHalfArea(t *testing.T) {
	winner := NewHole(1, 0, 0, "W", playerColor, false)
	loser := NewHole(2, 0, 0, "L", playerColor, false)
	winner.Area = 1000
	loser.Area = 600

	winner.ConsumeHole(loser)

	if math.Abs(winner.Area-1300) > 1e-9 {
		t.Errorf("expected area 1300, got %v", winner.Area)
	}
	if winner.Eliminations != 1 {
		t.Errorf("expected 1 elimination, got %d", winner.Eliminations)
	}
}

func TestCanCaptureAt(t *testing.T) {
	h := NewHole(1, 0, 0, "H", playerColor, false)
	h.Radius = 50

	// Fit limit is 50*0.92 = 46, zone is 50*1.05 = 52.5
	if !h.CanCaptureAt(40, 0, 40) {
		t.Error("size 40 at distance 40 should be capturable")
	}
	if h.CanCaptureAt(40, 0, 48) {
		t.Error("size 48 should not fit a radius-50 hole")
	}
	if h.CanCaptureAt(60, 0, 40) {
		t.Error("object at distance 60 is outside the capture zone")
	}
}

func TestHoleSpeedPenalty(t *testing.T) {
	small := NewHole(1, 500, 500, "S", playerColor, false)
	big := NewHole(2, 500, 500, "B", playerColor, false)
	big.Radius = 150
	small.SetVelocity(vec2(1, 0))
	big.SetVelocity(vec2(1, 0))

	small.Update(1.0, WorldWidth, WorldHeight, 200)
	big.Update(1.0, WorldWidth, WorldHeight, 200)

	smallDist := small.X - 500
	bigDist := big.X - 500
	if bigDist >= smallDist {
		t.Errorf("bigger hole should move slower: big %v, small %v", bigDist, smallDist)
	}

	// Penalty caps at radius 75; beyond that speed stops dropping
	huge := NewHole(3, 500, 500, "H", playerColor, false)
	huge.Radius = 200
	huge.SetVelocity(vec2(1, 0))
	huge.Update(1.0, WorldWidth, WorldHeight, 200)
	if math.Abs((huge.X-500)-bigDist) > 1e-9 {
		t.Error("speed penalty should cap for very large holes")
	}
}

func TestHoleDashMultiplier(t *testing.T) {
	h := NewHole(1, 500, 500, "H", playerColor, false)
	h.SetVelocity(vec2(1, 0))
	h.Update(0.1, WorldWidth, WorldHeight, 200)
	baseDist := h.X - 500

	d := NewHole(2, 500, 500, "D", playerColor, false)
	d.SetVelocity(vec2(1, 0))
	if !d.TryDash(3.0, 0.3) {
		t.Fatal("dash should start when moving and off cooldown")
	}
	d.Update(0.1, WorldWidth, WorldHeight, 200)
	dashDist := d.X - 500

	want := baseDist * DashMultiplier
	if math.Abs(dashDist-want) > 1e-9 {
		t.Errorf("expected dash distance %v, got %v", want, dashDist)
	}
}

func TestTryDashRules(t *testing.T) {
	h := NewHole(1, 500, 500, "H", playerColor, false)

	// Not moving
	if h.TryDash(3.0, 0.3) {
		t.Error("dash should fail while stationary")
	}

	h.SetVelocity(vec2(0, 1))
	if !h.TryDash(3.0, 0.3) {
		t.Error("dash should start")
	}
	// On cooldown now
	if h.TryDash(3.0, 0.3) {
		t.Error("dash should fail during cooldown")
	}
}

func TestToStateDashFlag(t *testing.T) {
	h := NewHole(1, 500, 500, "H", playerColor, false)
	if h.ToState().Dash {
		t.Error("a fresh hole should not report an active dash")
	}

	h.SetVelocity(vec2(1, 0))
	if !h.TryDash(3.0, 0.3) {
		t.Fatal("dash should start")
	}
	if !h.ToState().Dash {
		t.Error("an active dash should show in the broadcast state")
	}

	h.DashActive = 0
	if h.ToState().Dash {
		t.Error("dash flag should clear when the dash ends")
	}
}

func TestHoleWorldBounds(t *testing.T) {
	h := NewHole(1, 30, 30, "H", playerColor, false)
	h.SetVelocity(vec2(-1, -1))
	for i := 0; i < 120; i++ {
		h.Update(1.0/60.0, WorldWidth, WorldHeight, 200)
	}
	if h.X < h.Radius || h.Y < h.Radius {
		t.Errorf("hole should clamp to bounds, got (%v, %v)", h.X, h.Y)
	}
}

func TestHoleDieAndRespawn(t *testing.T) {
	h := NewHole(1, 500, 500, "H", playerColor, false)
	h.Grow(10000, GrowthMultiplier)

	h.Die(3.0)
	if h.Alive {
		t.Error("hole should be dead")
	}
	if h.Radius != InitialHoleRadius {
		t.Errorf("size should reset on death, got %v", h.Radius)
	}
	if h.Deaths != 1 {
		t.Errorf("expected 1 death, got %d", h.Deaths)
	}

	// Dead holes only count down, never move
	h.SetVelocity(vec2(1, 0))
	h.Update(1.0, WorldWidth, WorldHeight, 200)
	if h.X != 500 {
		t.Error("dead hole should not move")
	}
	if h.RespawnT >= 3.0 {
		t.Error("respawn countdown should advance")
	}
	if h.Alive {
		t.Error("countdown alone should not revive the hole")
	}

	h.Respawn(100, 200)
	if !h.Alive || h.X != 100 || h.Y != 200 {
		t.Error("respawn should relocate and revive")
	}
	if h.Invincible <= 0 {
		t.Error("respawn should grant invincibility")
	}
}
