package main

// VfxSink receives fire-and-forget effect requests from the simulation. The
// core never reads effect state back; how the events are choreographed is
// entirely the renderer's business.
type VfxSink interface {
	SpawnParticles(x, y float64, color Color, count int)
	SpawnRipple(x, y, radius float64, color Color)
}

// ParticleEvent is one particle-burst request
type ParticleEvent struct {
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Color Color   `json:"c" msgpack:"c"`
	Count int     `json:"n" msgpack:"n"`
}

// RippleEvent is one expanding-ring request
type RippleEvent struct {
	X      float64 `json:"x" msgpack:"x"`
	Y      float64 `json:"y" msgpack:"y"`
	Radius float64 `json:"r" msgpack:"r"`
	Color  Color   `json:"c" msgpack:"c"`
}

// VfxQueue collects the frame's effect events so the broadcast can carry
// them to the client renderer
type VfxQueue struct {
	Particles []ParticleEvent
	Ripples   []RippleEvent
}

func (q *VfxQueue) SpawnParticles(x, y float64, color Color, count int) {
	q.Particles = append(q.Particles, ParticleEvent{X: x, Y: y, Color: color, Count: count})
}

func (q *VfxQueue) SpawnRipple(x, y, radius float64, color Color) {
	q.Ripples = append(q.Ripples, RippleEvent{X: x, Y: y, Radius: radius, Color: color})
}

// Drain returns the queued events and resets the queue for the next frame
func (q *VfxQueue) Drain() ([]ParticleEvent, []RippleEvent) {
	p, r := q.Particles, q.Ripples
	q.Particles = nil
	q.Ripples = nil
	return p, r
}
