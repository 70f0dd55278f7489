package main

import "math/rand"

const (
	WorldWidth     = 2000.0
	WorldHeight    = 2000.0
	StreetWidth    = 40.0
	BlockSize      = 200.0
	AvenueInterval = 3    // every 3rd grid line is a wider avenue
	AvenueWidthMul = 1.5  // avenues are 50% wider than streets
	ParkChance     = 0.15 // per-block park roll
	LampSpacing    = 80.0
	LampChance     = 0.7
	MiscPropCount  = 50 // hydrants/trash cans scattered at the end
)

// Street is one street segment; avenues are the wide variant eligible for
// vehicle spawns
type Street struct {
	Rect     Rect
	IsAvenue bool
}

// Block is the area between streets
type Block struct {
	Rect   Rect
	IsPark bool
}

// World is the generated city. Immutable after generation except for the
// per-object capture state.
type World struct {
	Streets []Street
	Blocks  []Block
	Objects []WorldObject
	Width   float64
	Height  float64
}

// GenerateWorld builds a deterministic city from the seed. The RNG stream is
// consumed in a fixed order (blocks in row-major scan order with their
// objects, then street furniture per street, then misc props) so the same
// seed always produces the same layout.
func GenerateWorld(seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	ids := &IDAllocator{}

	w := &World{Width: WorldWidth, Height: WorldHeight}

	numBlocksX := int(WorldWidth / BlockSize)
	numBlocksY := int(WorldHeight / BlockSize)

	// Horizontal streets
	for i := 0; i <= numBlocksY; i++ {
		y := float64(i) * BlockSize
		isAvenue := i%AvenueInterval == 0
		width := StreetWidth
		if isAvenue {
			width = StreetWidth * AvenueWidthMul
		}
		w.Streets = append(w.Streets, Street{
			Rect:     Rect{X: 0, Y: y - width/2, W: WorldWidth, H: width},
			IsAvenue: isAvenue,
		})
	}

	// Vertical streets
	for i := 0; i <= numBlocksX; i++ {
		x := float64(i) * BlockSize
		isAvenue := i%AvenueInterval == 0
		width := StreetWidth
		if isAvenue {
			width = StreetWidth * AvenueWidthMul
		}
		w.Streets = append(w.Streets, Street{
			Rect:     Rect{X: x - width/2, Y: 0, W: width, H: WorldHeight},
			IsAvenue: isAvenue,
		})
	}

	// Blocks and their objects, row-major
	for by := 0; by < numBlocksY; by++ {
		for bx := 0; bx < numBlocksX; bx++ {
			x := float64(bx)*BlockSize + StreetWidth/2
			y := float64(by)*BlockSize + StreetWidth/2
			bw := BlockSize - StreetWidth
			bh := BlockSize - StreetWidth

			isPark := rng.Float64() < ParkChance
			w.Blocks = append(w.Blocks, Block{
				Rect:   Rect{X: x, Y: y, W: bw, H: bh},
				IsPark: isPark,
			})

			if isPark {
				treeCount := 5 + rng.Intn(7)
				for i := 0; i < treeCount; i++ {
					ox := x + rng.Float64()*bw
					oy := y + rng.Float64()*bh
					w.Objects = append(w.Objects, NewWorldObject(ids, ox, oy, ObjTree, rng))
				}
				benchCount := 2 + rng.Intn(3)
				for i := 0; i < benchCount; i++ {
					ox := x + rng.Float64()*bw
					oy := y + rng.Float64()*bh
					w.Objects = append(w.Objects, NewWorldObject(ids, ox, oy, ObjBench, rng))
				}
			} else {
				// 1-3 buildings subdividing the block width
				buildingCount := 1 + rng.Intn(3)
				const padding = 15.0
				for i := 0; i < buildingCount; i++ {
					bldW := bw/float64(buildingCount) - padding
					bldH := bh - padding*2
					ox := x + padding/2 + float64(i)*(bldW+padding)
					oy := y + padding
					w.Objects = append(w.Objects,
						NewBuilding(ids, ox+bldW/2, oy+bldH/2, bldW, bldH, rng))
				}
			}
		}
	}

	// Street furniture: lampposts on all streets, cars on avenues, people
	// everywhere
	for _, street := range w.Streets {
		horizontal := street.Rect.W > street.Rect.H
		if horizontal {
			for x := street.Rect.X + LampSpacing/2; x < street.Rect.X+street.Rect.W; x += LampSpacing {
				if rng.Float64() < LampChance {
					w.Objects = append(w.Objects,
						NewWorldObject(ids, x, street.Rect.Y+5, ObjLamppost, rng))
				}
			}
		} else {
			for y := street.Rect.Y + LampSpacing/2; y < street.Rect.Y+street.Rect.H; y += LampSpacing {
				if rng.Float64() < LampChance {
					w.Objects = append(w.Objects,
						NewWorldObject(ids, street.Rect.X+5, y, ObjLamppost, rng))
				}
			}
		}

		if street.IsAvenue {
			carCount := 3 + rng.Intn(5)
			for i := 0; i < carCount; i++ {
				var cx, cy float64
				if horizontal {
					cx = street.Rect.X + rng.Float64()*street.Rect.W
					cy = street.Rect.Y + street.Rect.H/2
				} else {
					cx = street.Rect.X + street.Rect.W/2
					cy = street.Rect.Y + rng.Float64()*street.Rect.H
				}
				w.Objects = append(w.Objects, NewWorldObject(ids, cx, cy, ObjCar, rng))
			}
		}

		peopleCount := 2 + rng.Intn(4)
		for i := 0; i < peopleCount; i++ {
			px := street.Rect.X + rng.Float64()*street.Rect.W
			py := street.Rect.Y + rng.Float64()*street.Rect.H
			w.Objects = append(w.Objects, NewWorldObject(ids, px, py, ObjPerson, rng))
		}
	}

	// Scatter hydrants and trash cans uniformly
	for i := 0; i < MiscPropCount; i++ {
		x := rng.Float64() * WorldWidth
		y := rng.Float64() * WorldHeight
		typ := ObjHydrant
		if rng.Float64() >= 0.5 {
			typ = ObjTrashCan
		}
		w.Objects = append(w.Objects, NewWorldObject(ids, x, y, typ, rng))
	}

	return w
}

// SpawnPosition picks a uniform point on a uniformly chosen street segment.
// It does not check for occupancy; spawning on top of a hazard is accepted.
func (w *World) SpawnPosition(rng *rand.Rand) Vec2 {
	street := w.Streets[rng.Intn(len(w.Streets))]
	return vec2(
		street.Rect.X+rng.Float64()*street.Rect.W,
		street.Rect.Y+rng.Float64()*street.Rect.H,
	)
}

// ConsumptionPercentage returns how much of the city has been consumed, 0-100
func (w *World) ConsumptionPercentage() float64 {
	if len(w.Objects) == 0 {
		return 0
	}
	consumed := 0
	for i := range w.Objects {
		if w.Objects[i].Consumed {
			consumed++
		}
	}
	return float64(consumed) / float64(len(w.Objects)) * 100
}
