package main

import "math/rand"

// SkinPattern identifies the rim pattern drawn around a hole
type SkinPattern int

const (
	SkinPlain   SkinPattern = 0
	SkinStriped SkinPattern = 1
	SkinDotted  SkinPattern = 2
	SkinSwirl   SkinPattern = 3
)

// BorderStyle identifies the border rendering of a hole
type BorderStyle int

const (
	BorderSolid  BorderStyle = 0
	BorderGlow   BorderStyle = 1
	BorderDashed BorderStyle = 2
)

// SkinDef holds the render parameters of a skin. All of it is cosmetic; the
// simulation never reads these values.
type SkinDef struct {
	Pattern    SkinPattern
	Border     BorderStyle
	Name       string
	RimWidth   float64 // fraction of the hole radius
	PulseSpeed float64 // rim pulse cycles per second
}

var Skins = []SkinDef{
	{SkinPlain, BorderSolid, "Classic", 0.08, 0.5},
	{SkinStriped, BorderSolid, "Racer", 0.10, 0.5},
	{SkinDotted, BorderGlow, "Firefly", 0.08, 1.2},
	{SkinSwirl, BorderGlow, "Vortex", 0.12, 0.8},
	{SkinPlain, BorderDashed, "Phantom", 0.06, 0.3},
	{SkinStriped, BorderDashed, "Hazard", 0.10, 1.0},
}

// GetSkin returns a skin by index, falling back to the first
func GetSkin(i int) SkinDef {
	if i < 0 || i >= len(Skins) {
		return Skins[0]
	}
	return Skins[i]
}

// RandomSkin picks a skin index from the session RNG
func RandomSkin(rng *rand.Rand) int {
	return rng.Intn(len(Skins))
}

// Apply stamps the skin onto a hole
func (s SkinDef) Apply(h *Hole) {
	h.SkinPattern = uint8(s.Pattern)
	h.BorderStyle = uint8(s.Border)
}
