package main

import (
	"fmt"
	"math"
)

// GameClock is a countdown timer with pause support
type GameClock struct {
	Duration  float64 // total duration, seconds
	Remaining float64
	Running   bool
	Elapsed   float64 // time since start, excludes pauses
}

// NewGameClock creates a stopped clock with the given duration
func NewGameClock(duration float64) *GameClock {
	return &GameClock{Duration: duration, Remaining: duration}
}

// Start begins the countdown
func (c *GameClock) Start() {
	c.Running = true
}

// Pause freezes the countdown
func (c *GameClock) Pause() {
	c.Running = false
}

// Resume continues a paused countdown
func (c *GameClock) Resume() {
	c.Running = true
}

// Reset restores the full duration and stops the clock
func (c *GameClock) Reset() {
	c.Remaining = c.Duration
	c.Elapsed = 0
	c.Running = false
}

// Update advances the countdown. Returns true exactly on the tick the time
// runs out.
func (c *GameClock) Update(dt float64) bool {
	if !c.Running {
		return false
	}
	c.Elapsed += dt
	wasPositive := c.Remaining > 0
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.Running = false
		return wasPositive
	}
	return false
}

// Finished reports whether the countdown has run out
func (c *GameClock) Finished() bool {
	return c.Remaining <= 0
}

// Minutes returns the whole minutes remaining
func (c *GameClock) Minutes() int {
	return int(c.Remaining / 60)
}

// Seconds returns the seconds remaining within the current minute
func (c *GameClock) Seconds() int {
	return int(math.Mod(c.Remaining, 60))
}

// Formatted returns the remaining time as MM:SS
func (c *GameClock) Formatted() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes(), c.Seconds())
}

// Progress returns 0 at full time and 1 when none is left
func (c *GameClock) Progress() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return 1 - c.Remaining/c.Duration
}
