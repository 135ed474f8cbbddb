package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/spawnproof/internal/grid"
)

func TestFloodFillClosedRegion(t *testing.T) {
	g := grid.New(7, 7)
	g.SetAll(RectPerimeter(grid.C(1, 1), grid.C(5, 5)), grid.Blocked)

	region := FloodFill(g, grid.C(3, 3), grid.Blocked)
	require.Len(t, region, 9)
	for _, c := range region {
		assert.True(t, c.X >= 2 && c.X <= 4 && c.Y >= 2 && c.Y <= 4, "%v leaked outside", c)
	}
}

func TestFloodFillOpenBoundaryFloodsEverything(t *testing.T) {
	g := grid.New(6, 6)
	perimeter := RectPerimeter(grid.C(1, 1), grid.C(4, 4))
	g.SetAll(perimeter, grid.Blocked)
	g.Set(grid.C(4, 2), grid.Empty) // gap in the wall

	region := FloodFill(g, grid.C(2, 2), grid.Blocked)
	assert.Len(t, region, 36-len(perimeter)+1)
}

func TestFloodFillWholeGrid(t *testing.T) {
	g := grid.New(40, 30)

	region := FloodFill(g, grid.C(17, 9), grid.Spawnable)
	require.Len(t, region, 40*30)
	assert.Len(t, coordSet(region), 40*30, "each cell visited once")
	for _, c := range region {
		assert.True(t, g.InBounds(c))
	}
}

func TestFloodFillNoOp(t *testing.T) {
	g := grid.New(4, 4)
	for i := range g.Cells {
		g.Cells[i] = grid.Anchor
	}

	assert.Empty(t, FloodFill(g, grid.C(1, 1), grid.Anchor))
}

func TestFloodFillOverwritesOtherCodes(t *testing.T) {
	// Codes other than the fill code are not boundaries.
	rows := [][]int{
		{1, 3, 0},
		{2, 2, 2},
		{0, 4, 1},
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	region := FloodFill(g, grid.C(0, 0), grid.Blocked)
	assert.ElementsMatch(t, []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}, region)
}

func TestFloodFillSeedClamped(t *testing.T) {
	g := grid.New(3, 3)
	region := FloodFill(g, grid.C(-5, 10), grid.Spawnable)
	assert.Len(t, region, 9)
}

func TestFloodFillLargeGridDoesNotRecurse(t *testing.T) {
	g := grid.New(600, 600)
	region := FloodFill(g, grid.C(0, 0), grid.Spawnable)
	assert.Len(t, region, 600*600)
}
