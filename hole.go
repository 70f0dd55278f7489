package main

import "math"

const (
	InitialHoleRadius = 25.0
	MaxHoleRadius     = 200.0
	HoleCombatMargin  = 1.2  // must be 20% larger to eat another hole
	HoleOverlapRatio  = 0.6  // fraction of summed radii that counts as overlap
	CaptureZoneRatio  = 1.05 // capture zone, in own radii
	SizeSpeedPenalty  = 0.3  // how hard the size penalty bites
	DashMultiplier    = 2.5
	RespawnInvincible = 1.0 // seconds of invincibility after respawn
)

// Hole is a player- or bot-controlled consuming entity. Growth is tracked as
// area; the gameplay size is the derived radius.
type Hole struct {
	ID       uint32
	X, Y     float64
	Radius   float64
	VelX     float64 // normalized movement direction
	VelY     float64
	Name     string
	Color    Color
	IsPlayer bool
	Alive    bool

	Area         float64
	Score        int // objects consumed
	Eliminations int // holes consumed
	Deaths       int

	DashCooldown float64 // remaining cooldown
	DashActive   float64 // remaining dash time

	RespawnT   float64 // time until respawn
	Invincible float64 // invincibility remaining

	// Render-only
	SkinPattern uint8
	BorderStyle uint8
	PulseT      float64
}

// NewHole creates a hole at the initial size
func NewHole(id uint32, x, y float64, name string, color Color, isPlayer bool) *Hole {
	return &Hole{
		ID:       id,
		X:        x,
		Y:        y,
		Radius:   InitialHoleRadius,
		Name:     name,
		Color:    color,
		IsPlayer: isPlayer,
		Alive:    true,
		Area:     math.Pi * InitialHoleRadius * InitialHoleRadius,
	}
}

// Update advances timers and integrates position. While dead only the
// respawn countdown runs; movement and growth are frozen. Larger holes move
// proportionally slower, capped, and an active dash multiplies speed.
func (h *Hole) Update(dt, worldW, worldH, moveSpeed float64) {
	if h.DashCooldown > 0 {
		h.DashCooldown -= dt
	}
	if h.DashActive > 0 {
		h.DashActive -= dt
	}
	if h.Invincible > 0 {
		h.Invincible -= dt
	}
	if !h.Alive {
		if h.RespawnT > 0 {
			h.RespawnT -= dt
		}
		return
	}

	h.PulseT += dt

	sizePenalty := math.Min(h.Radius/50.0, 1.5)
	effectiveSpeed := moveSpeed / (1 + sizePenalty*SizeSpeedPenalty)
	dashMult := 1.0
	if h.DashActive > 0 {
		dashMult = DashMultiplier
	}
	h.X += h.VelX * effectiveSpeed * dashMult * dt
	h.Y += h.VelY * effectiveSpeed * dashMult * dt

	h.X = Clamp(h.X, h.Radius, worldW-h.Radius)
	h.Y = Clamp(h.Y, h.Radius, worldH-h.Radius)
}

// SetVelocity stores the normalized direction. Directions shorter than 0.01
// collapse to a full stop, which also guards the normalization.
func (h *Hole) SetVelocity(dir Vec2) {
	if dir.Length() > 0.01 {
		n := dir.Normalize()
		h.VelX = n.X
		h.VelY = n.Y
	} else {
		h.VelX = 0
		h.VelY = 0
	}
}

// TryDash starts a dash if off cooldown and moving. Returns whether the dash
// started; failure is a normal outcome, not an error.
func (h *Hole) TryDash(cooldown, duration float64) bool {
	if h.DashCooldown <= 0 && vec2(h.VelX, h.VelY).Length() > 0.01 {
		h.DashCooldown = cooldown
		h.DashActive = duration
		return true
	}
	return false
}

// Grow consumes one object's mass. One call per fully consumed object; the
// score counts calls.
func (h *Hole) Grow(mass, growthMultiplier float64) {
	h.Area += mass * growthMultiplier
	h.recomputeRadius()
	h.Score++
}

// ConsumeHole takes half the other hole's area. The loser is not mutated
// here; the caller kills or deactivates it separately.
func (h *Hole) ConsumeHole(other *Hole) {
	h.Area += other.Area * 0.5
	h.recomputeRadius()
	h.Eliminations++
}

// radius = sqrt(area/pi), capped
func (h *Hole) recomputeRadius() {
	h.Radius = math.Min(math.Sqrt(h.Area/math.Pi), MaxHoleRadius)
}

// CanConsumeHole reports whether h can eat other: both alive, other not
// invincible, and h at least 20% larger by radius
func (h *Hole) CanConsumeHole(other *Hole) bool {
	if !h.Alive || !other.Alive {
		return false
	}
	if other.Invincible > 0 {
		return false
	}
	return h.Radius > other.Radius*HoleCombatMargin
}

// OverlapsHole reports whether the holes overlap enough for combat; merely
// touching is not enough
func (h *Hole) OverlapsHole(other *Hole) bool {
	return Distance(h.X, h.Y, other.X, other.Y) < (h.Radius+other.Radius)*HoleOverlapRatio
}

// CanCaptureAt checks the capture condition for an object: it must fit, and
// its center must lie within the capture zone
func (h *Hole) CanCaptureAt(objX, objY, objSize float64) bool {
	if objSize > h.Radius*SwallowFitRatio {
		return false
	}
	return Distance(h.X, h.Y, objX, objY) <= h.Radius*CaptureZoneRatio
}

// Die deactivates the hole and starts the respawn countdown. Size resets
// immediately so a dead hole never shows its old bulk.
func (h *Hole) Die(respawnTime float64) {
	h.Alive = false
	h.Deaths++
	h.RespawnT = respawnTime
	h.Area = math.Pi * InitialHoleRadius * InitialHoleRadius
	h.Radius = InitialHoleRadius
}

// Respawn relocates and reactivates the hole with a short invincibility
// window
func (h *Hole) Respawn(x, y float64) {
	h.X = x
	h.Y = y
	h.Alive = true
	h.Invincible = RespawnInvincible
}

// Position returns the hole center
func (h *Hole) Position() Vec2 {
	return vec2(h.X, h.Y)
}
