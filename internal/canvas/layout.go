// Package canvas implements the editing side of the tool: the session state
// machine driven by pointer and key events, and the geometry it rasterizes
// onto the grid (rectangle and circle perimeters, flood fill).
package canvas

import (
	"github.com/vovakirdan/spawnproof/internal/core"
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// Layout describes how grid cells are placed on the drawing surface.
// A cell occupies CellW x CellH units followed by Margin units of spacing on
// each axis; the first cell starts at (OriginX, OriginY).
type Layout struct {
	CellW   int
	CellH   int
	Margin  int
	OriginX int
	OriginY int
}

// DefaultLayout is two terminal columns by one row per cell, no margin.
func DefaultLayout() Layout {
	return Layout{CellW: 2, CellH: 1}
}

// StrideX returns the horizontal extent of one cell including its margin.
func (l Layout) StrideX() int {
	return core.Max(l.CellW+l.Margin, 1)
}

// StrideY returns the vertical extent of one cell including its margin.
func (l Layout) StrideY() int {
	return core.Max(l.CellH+l.Margin, 1)
}

// CellAt maps a pointer position to the cell under it on a w x h grid.
// Positions outside the grid saturate to the nearest edge cell.
func (l Layout) CellAt(px, py, w, h int) grid.Coord {
	x := (px - l.OriginX) / l.StrideX()
	y := (py - l.OriginY) / l.StrideY()
	return grid.Coord{
		X: core.Clamp(x, 0, w-1),
		Y: core.Clamp(y, 0, h-1),
	}
}

// Origin returns the surface position of the top-left corner of cell c.
func (l Layout) Origin(c grid.Coord) (int, int) {
	return l.OriginX + c.X*l.StrideX(), l.OriginY + c.Y*l.StrideY()
}

// Size returns the surface extent needed to draw a w x h grid.
func (l Layout) Size(w, h int) (int, int) {
	return w*l.StrideX() - l.Margin, h*l.StrideY() - l.Margin
}
