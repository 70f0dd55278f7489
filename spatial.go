package main

import "math"

// SpatialCellSize is the uniform grid cell size, ~2x the largest street prop
const SpatialCellSize = 100.0

// CellCoord addresses one grid cell
type CellCoord struct {
	X, Y int
}

func cellAt(x, y float64) CellCoord {
	return CellCoord{
		X: int(math.Floor(x / SpatialCellSize)),
		Y: int(math.Floor(y / SpatialCellSize)),
	}
}

// SpatialGrid is a uniform broad-phase index over world objects, mapping
// cell coordinates to object indices. It is rebuilt from scratch every frame;
// there is no incremental maintenance.
type SpatialGrid struct {
	cells map[CellCoord][]int
}

// NewSpatialGrid creates an empty grid
func NewSpatialGrid() *SpatialGrid {
	return &SpatialGrid{cells: make(map[CellCoord][]int)}
}

// Build clears and repopulates the grid. Each non-consumed object is inserted
// into every cell its bounding box overlaps; consumed objects are skipped, so
// queries only ever return live indices.
func (g *SpatialGrid) Build(objects []WorldObject) {
	for k := range g.cells {
		delete(g.cells, k)
	}
	for idx := range objects {
		obj := &objects[idx]
		if obj.Consumed {
			continue
		}
		halfW := obj.Width / 2
		halfH := obj.Height / 2
		minCell := cellAt(obj.X-halfW, obj.Y-halfH)
		maxCell := cellAt(obj.X+halfW, obj.Y+halfH)
		for cx := minCell.X; cx <= maxCell.X; cx++ {
			for cy := minCell.Y; cy <= maxCell.Y; cy++ {
				coord := CellCoord{X: cx, Y: cy}
				g.cells[coord] = append(g.cells[coord], idx)
			}
		}
	}
}

// QueryRadius returns the deduplicated indices of objects in all cells
// overlapping the bounding square of the circle. This is a broad phase:
// callers must re-check exact distance themselves.
func (g *SpatialGrid) QueryRadius(x, y, radius float64) []int {
	return g.queryCells(cellAt(x-radius, y-radius), cellAt(x+radius, y+radius))
}

// QueryRect returns the deduplicated indices of objects in all cells
// overlapping the rectangle
func (g *SpatialGrid) QueryRect(r Rect) []int {
	return g.queryCells(cellAt(r.X, r.Y), cellAt(r.X+r.W, r.Y+r.H))
}

func (g *SpatialGrid) queryCells(minCell, maxCell CellCoord) []int {
	var result []int
	seen := make(map[int]struct{})
	for cx := minCell.X; cx <= maxCell.X; cx++ {
		for cy := minCell.Y; cy <= maxCell.Y; cy++ {
			for _, idx := range g.cells[CellCoord{X: cx, Y: cy}] {
				if _, ok := seen[idx]; ok {
					continue
				}
				seen[idx] = struct{}{}
				result = append(result, idx)
			}
		}
	}
	return result
}
