package canvas

import (
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// FloodFill returns the 4-connected region reachable from seed without
// crossing a cell that already holds code. Those cells act as the boundary,
// and so does the grid edge: neighbours are clamped, never wrapped.
//
// The walk uses an explicit stack and visits every cell at most once, so an
// open boundary simply floods everything reachable. A seed that already holds
// code yields an empty region.
func FloodFill(g *grid.Grid, seed grid.Coord, code grid.Code) []grid.Coord {
	seed = g.Clamp(seed)
	if g.Get(seed) == code {
		return nil
	}

	visited := make([]bool, g.W*g.H)
	visited[seed.Y*g.W+seed.X] = true
	stack := []grid.Coord{seed}

	var region []grid.Coord
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, c)

		for _, n := range [4]grid.Coord{c.Add(-1, 0), c.Add(1, 0), c.Add(0, -1), c.Add(0, 1)} {
			n = g.Clamp(n)
			i := n.Y*g.W + n.X
			if visited[i] || g.Get(n) == code {
				continue
			}
			visited[i] = true
			stack = append(stack, n)
		}
	}
	return region
}
