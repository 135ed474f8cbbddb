package canvas

import (
	"github.com/vovakirdan/spawnproof/internal/core"
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// MinRadius is the smallest circle radius the editor accepts.
const MinRadius = 2

// RectPerimeter returns the hollow rectangle spanned by two opposite corners:
// the full rows of both corners and the full columns of both corners.
// Each cell appears once.
func RectPerimeter(a, b grid.Coord) []grid.Coord {
	x0, x1 := core.Span(a.X, b.X)
	y0, y1 := core.Span(a.Y, b.Y)

	var out []grid.Coord
	seen := make(map[grid.Coord]bool)
	add := func(c grid.Coord) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	for x := x0; x <= x1; x++ {
		add(grid.C(x, y0))
		add(grid.C(x, y1))
	}
	for y := y0; y <= y1; y++ {
		add(grid.C(x0, y))
		add(grid.C(x1, y))
	}
	return out
}

// CirclePerimeter rasterizes the outline of a circle with the integer
// midpoint algorithm. The first octant is walked from (radius, 0) until x < y
// and every point is reflected into the other seven octants. Points are not
// clamped; callers clip them to their grid. Each point appears once.
func CirclePerimeter(center grid.Coord, radius int) []grid.Coord {
	if radius < 0 {
		radius = -radius
	}

	var out []grid.Coord
	seen := make(map[grid.Coord]bool)
	add := func(dx, dy int) {
		c := center.Add(dx, dy)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	x, y := radius, 0
	for x >= y {
		add(x, y)
		add(y, x)
		add(-y, x)
		add(-x, y)
		add(-x, -y)
		add(-y, -x)
		add(x, -y)
		add(y, -x)

		if x*x+(y+1)*(y+1)-radius*radius >= 0 {
			x--
		}
		y++
	}
	return out
}

// Clip clamps every coordinate into g and drops the duplicates clamping creates.
func Clip(g *grid.Grid, cs []grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, len(cs))
	seen := make(map[grid.Coord]bool, len(cs))
	for _, c := range cs {
		c = g.Clamp(c)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
