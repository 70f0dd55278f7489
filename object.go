package main

import (
	"math"
	"math/rand"
)

// ObjectType tags a world object with its kind
type ObjectType int

const (
	ObjBuilding ObjectType = iota
	ObjCar
	ObjTree
	ObjPerson
	ObjLamppost
	ObjHydrant
	ObjTrashCan
	ObjBench
)

// BaseSize returns the pre-jitter size for this object type
func (t ObjectType) BaseSize() float64 {
	switch t {
	case ObjBuilding:
		return 60.0
	case ObjCar:
		return 18.0
	case ObjTree:
		return 12.0
	case ObjPerson:
		return 5.0
	case ObjLamppost:
		return 6.0
	case ObjHydrant:
		return 4.0
	case ObjTrashCan:
		return 5.0
	case ObjBench:
		return 8.0
	}
	return 0
}

// BaseColor returns the pre-jitter color for this object type
func (t ObjectType) BaseColor() Color {
	switch t {
	case ObjBuilding:
		return Color{0.45, 0.45, 0.55}
	case ObjCar:
		return Color{0.8, 0.2, 0.2}
	case ObjTree:
		return Color{0.2, 0.6, 0.2}
	case ObjPerson:
		return Color{0.9, 0.7, 0.5}
	case ObjLamppost:
		return Color{0.3, 0.3, 0.3}
	case ObjHydrant:
		return Color{0.9, 0.1, 0.1}
	case ObjTrashCan:
		return Color{0.3, 0.5, 0.3}
	case ObjBench:
		return Color{0.5, 0.35, 0.2}
	}
	return Color{}
}

func (t ObjectType) String() string {
	switch t {
	case ObjBuilding:
		return "building"
	case ObjCar:
		return "car"
	case ObjTree:
		return "tree"
	case ObjPerson:
		return "person"
	case ObjLamppost:
		return "lamppost"
	case ObjHydrant:
		return "hydrant"
	case ObjTrashCan:
		return "trashcan"
	case ObjBench:
		return "bench"
	}
	return "unknown"
}

// ObjectState is the capture lifecycle tag. Transitions are one-directional:
// Normal -> Falling -> Consumed; no object ever re-enters Normal.
type ObjectState int

const (
	StateNormal ObjectState = iota
	StateFalling
	StateConsumed
)

// FallingState is the payload an object carries only while it falls into a
// hole. HoleID names the capturing hole so growth lands on the right one.
type FallingState struct {
	Progress float64
	TargetX  float64
	TargetY  float64
	Rotation float64
	HoleID   uint32
}

const (
	SwallowFitRatio = 0.92 // object size vs hole radius to fit
	FallRate        = 3.0  // progress/s, a fall completes in ~1/3 s
	FallSpin        = 15.0 // radians/s spin while falling
	SizeJitter      = 0.2  // ±20% size variation per object
	ColorJitter     = 0.1  // ±0.1 per channel, clamped to [0,1]
)

// WorldObject is a capturable world prop. Objects are created once at world
// generation and never deleted; "removal" is the Consumed flag.
type WorldObject struct {
	ID       uint32
	X, Y     float64
	Width    float64
	Height   float64
	Size     float64 // capture-fit metric
	Mass     float64 // growth value when consumed
	Type     ObjectType
	State    ObjectState
	Fall     *FallingState // non-nil iff State == StateFalling
	Consumed bool
	Color    Color
	Rotation float64
}

// NewWorldObject creates an object of the given type with jittered size,
// color and rotation
func NewWorldObject(ids *IDAllocator, x, y float64, typ ObjectType, rng *rand.Rand) WorldObject {
	size := typ.BaseSize() * (1 - SizeJitter + rng.Float64()*2*SizeJitter)
	base := typ.BaseColor()
	jitter := -ColorJitter + rng.Float64()*2*ColorJitter
	color := Color{
		R: Clamp(base.R+jitter, 0, 1),
		G: Clamp(base.G+jitter, 0, 1),
		B: Clamp(base.B+jitter, 0, 1),
	}
	return WorldObject{
		ID:       ids.Next(),
		X:        x,
		Y:        y,
		Width:    size,
		Height:   size,
		Size:     size,
		Mass:     size * size * 0.1,
		Type:     typ,
		State:    StateNormal,
		Color:    color,
		Rotation: rng.Float64() * 2 * math.Pi,
	}
}

// NewBuilding creates a building with explicit dimensions. Buildings are
// heavy: mass scales with footprint, not the fit metric.
func NewBuilding(ids *IDAllocator, x, y, width, height float64, rng *rand.Rand) WorldObject {
	gray := 0.35 + rng.Float64()*0.3
	return WorldObject{
		ID:     ids.Next(),
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Size:   (width + height) / 2,
		Mass:   width * height * 0.5,
		Type:   ObjBuilding,
		State:  StateNormal,
		Color:  Color{R: gray, G: gray, B: gray + 0.05},
	}
}

// CanBeSwallowed reports whether the object fits a hole of the given radius
func (o *WorldObject) CanBeSwallowed(holeRadius float64) bool {
	return o.Size <= holeRadius*SwallowFitRatio
}

// StartFalling begins the capture animation toward a hole
func (o *WorldObject) StartFalling(holeX, holeY float64, holeID uint32) {
	o.State = StateFalling
	o.Fall = &FallingState{TargetX: holeX, TargetY: holeY, HoleID: holeID}
}

// UpdateFalling advances the fall and returns true exactly once, the frame
// the object lands. The position update is a decaying pursuit of the target
// (ease t², fractional per frame), so the resting position only approximates
// the target; that is the intended look, not an error to correct.
func (o *WorldObject) UpdateFalling(dt float64) bool {
	if o.State != StateFalling {
		return false
	}
	f := o.Fall
	f.Progress += dt * FallRate
	f.Rotation += dt * FallSpin

	t := math.Min(f.Progress, 1.0)
	easeT := t * t
	o.X += (f.TargetX - o.X) * easeT * 0.3
	o.Y += (f.TargetY - o.Y) * easeT * 0.3
	o.Rotation = f.Rotation

	if f.Progress >= 1.0 {
		o.State = StateConsumed
		o.Consumed = true
		o.Fall = nil
		return true
	}
	return false
}

// VisualScale returns the render scale for the current state
func (o *WorldObject) VisualScale() float64 {
	switch o.State {
	case StateFalling:
		t := math.Min(o.Fall.Progress, 1.0)
		return 1.0 - t*0.8
	case StateConsumed:
		return 0
	}
	return 1.0
}

// VisualAlpha returns the render opacity for the current state
func (o *WorldObject) VisualAlpha() float64 {
	switch o.State {
	case StateFalling:
		t := math.Min(o.Fall.Progress, 1.0)
		return 1.0 - t*0.7
	case StateConsumed:
		return 0
	}
	return 1.0
}

// BoundsRect returns the axis-aligned bounds, centered on the object
func (o *WorldObject) BoundsRect() Rect {
	return Rect{
		X: o.X - o.Width/2,
		Y: o.Y - o.Height/2,
		W: o.Width,
		H: o.Height,
	}
}
