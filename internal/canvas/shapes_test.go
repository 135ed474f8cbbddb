package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spawnproof/internal/grid"
)

func coordSet(cs []grid.Coord) map[grid.Coord]bool {
	set := make(map[grid.Coord]bool, len(cs))
	for _, c := range cs {
		set[c] = true
	}
	return set
}

func TestRectPerimeter(t *testing.T) {
	tests := []struct {
		name  string
		a, b  grid.Coord
		count int
	}{
		{"single cell", grid.C(2, 2), grid.C(2, 2), 1},
		{"horizontal line", grid.C(0, 0), grid.C(4, 0), 5},
		{"vertical line", grid.C(1, 0), grid.C(1, 3), 4},
		{"2x2", grid.C(0, 0), grid.C(1, 1), 4},
		{"5x4", grid.C(1, 1), grid.C(5, 4), 14},
		{"reversed corners", grid.C(5, 4), grid.C(1, 1), 14},
		{"anti-diagonal corners", grid.C(5, 1), grid.C(1, 4), 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cells := RectPerimeter(tc.a, tc.b)
			require.Len(t, cells, tc.count)
			assert.Len(t, coordSet(cells), tc.count, "cells must be unique")

			minX, maxX := min(tc.a.X, tc.b.X), max(tc.a.X, tc.b.X)
			minY, maxY := min(tc.a.Y, tc.b.Y), max(tc.a.Y, tc.b.Y)
			for _, c := range cells {
				onEdge := c.X == minX || c.X == maxX || c.Y == minY || c.Y == maxY
				assert.True(t, onEdge, "%v is not on the perimeter", c)
				assert.True(t, c.X >= minX && c.X <= maxX && c.Y >= minY && c.Y <= maxY,
					"%v is outside the rectangle", c)
			}
		})
	}
}

func TestRectPerimeterIsHollow(t *testing.T) {
	set := coordSet(RectPerimeter(grid.C(0, 0), grid.C(4, 4)))
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			assert.False(t, set[grid.C(x, y)], "interior cell %d,%d included", x, y)
		}
	}
}

func TestCirclePerimeterRadiusTwo(t *testing.T) {
	center := grid.C(5, 5)
	got := coordSet(CirclePerimeter(center, 2))

	expected := []grid.Coord{
		center.Add(2, 0), center.Add(-2, 0), center.Add(0, 2), center.Add(0, -2),
		center.Add(1, 1), center.Add(-1, 1), center.Add(1, -1), center.Add(-1, -1),
	}
	assert.Equal(t, coordSet(expected), got)
}

func TestCirclePerimeterProperties(t *testing.T) {
	center := grid.C(20, 20)

	for r := MinRadius; r <= 15; r++ {
		cells := CirclePerimeter(center, r)
		set := coordSet(cells)
		require.Len(t, set, len(cells), "radius %d: duplicate points", r)
		require.False(t, set[center], "radius %d: center included", r)

		for _, c := range cells {
			dx, dy := c.X-center.X, c.Y-center.Y

			// Stays on a ring around the radius; never reaches into the interior.
			d2 := dx*dx + dy*dy
			assert.GreaterOrEqual(t, d2, (r-1)*(r-1)-2, "radius %d: %v too close", r, c)
			assert.LessOrEqual(t, d2, r*r+2, "radius %d: %v too far", r, c)

			// Symmetric under a quarter turn and under both mirrors.
			assert.True(t, set[center.Add(-dy, dx)], "radius %d: rotation of %v missing", r, c)
			assert.True(t, set[center.Add(-dx, dy)], "radius %d: mirror of %v missing", r, c)
			assert.True(t, set[center.Add(dx, -dy)], "radius %d: mirror of %v missing", r, c)
		}

		// Axis extremes sit exactly at the radius.
		assert.True(t, set[center.Add(r, 0)])
		assert.True(t, set[center.Add(0, -r)])
	}
}

func TestCirclePerimeterInteriorEmpty(t *testing.T) {
	r := 8
	center := grid.C(10, 10)
	set := coordSet(CirclePerimeter(center, r))

	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if math.Hypot(float64(x), float64(y)) < float64(r)-1.5 {
				assert.False(t, set[center.Add(x, y)], "interior point %d,%d included", x, y)
			}
		}
	}
}

func TestClip(t *testing.T) {
	g := grid.New(5, 5)
	cells := Clip(g, CirclePerimeter(grid.C(0, 0), 4))

	require.NotEmpty(t, cells)
	assert.Len(t, coordSet(cells), len(cells))
	for _, c := range cells {
		assert.True(t, g.InBounds(c), "%v out of bounds", c)
	}
	// Points left of and above the grid saturate onto its edges.
	assert.Contains(t, cells, grid.C(0, 4))
	assert.Contains(t, cells, grid.C(4, 0))
}

func TestLayoutCellAt(t *testing.T) {
	l := Layout{CellW: 2, CellH: 1, Margin: 1}

	tests := []struct {
		name   string
		px, py int
		want   grid.Coord
	}{
		{"origin", 0, 0, grid.C(0, 0)},
		{"inside first cell", 1, 0, grid.C(0, 0)},
		{"margin belongs to previous cell", 2, 1, grid.C(0, 0)},
		{"second cell", 3, 2, grid.C(1, 1)},
		{"negative saturates", -7, -1, grid.C(0, 0)},
		{"far right saturates", 500, 3, grid.C(9, 1)},
		{"far bottom saturates", 4, 999, grid.C(1, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, l.CellAt(tc.px, tc.py, 10, 6))
		})
	}
}

func TestLayoutOffsetAndSize(t *testing.T) {
	l := Layout{CellW: 2, CellH: 1, OriginX: 4, OriginY: 2}

	assert.Equal(t, grid.C(0, 0), l.CellAt(4, 2, 3, 3))
	assert.Equal(t, grid.C(0, 0), l.CellAt(1, 0, 3, 3))
	assert.Equal(t, grid.C(2, 1), l.CellAt(8, 3, 3, 3))

	x, y := l.Origin(grid.C(2, 1))
	assert.Equal(t, 8, x)
	assert.Equal(t, 3, y)

	w, h := l.Size(3, 4)
	assert.Equal(t, 6, w)
	assert.Equal(t, 4, h)
}
