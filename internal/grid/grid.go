package grid

import (
	"github.com/vovakirdan/spawnproof/internal/core"
)

// Grid is a rectangular array of cell codes.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Code
}

// New creates a w x h grid with every cell empty.
// Dimensions below 1 are raised to 1.
func New(w, h int) *Grid {
	w = core.Max(w, 1)
	h = core.Max(h, 1)
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Code, w*h),
	}
}

// FromRows builds a grid from nested rows of integer codes.
// It fails when rows is empty, ragged, or holds a value outside the enumeration.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, newParseError(CodeEmpty, "grid has no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, newParseError(CodeEmpty, "grid has no columns")
	}

	g := &Grid{W: w, H: len(rows), Cells: make([]Code, 0, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, newParseError(CodeRagged,
				"row %d has %d cells, expected %d", y, len(row), w)
		}
		for x, v := range row {
			if v < 0 || v >= NumCodes {
				return nil, newParseError(CodeValue,
					"cell (%d,%d) holds %d, expected 0..%d", x, y, v, NumCodes-1)
			}
			g.Cells = append(g.Cells, Code(v))
		}
	}
	return g, nil
}

// Rows returns the grid as nested rows of integer codes.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := range rows {
		row := make([]int, g.W)
		for x := range row {
			row[x] = int(g.Cells[y*g.W+x])
		}
		rows[y] = row
	}
	return rows
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Clamp saturates c into the grid: each axis is clamped to [0, size-1].
func (g *Grid) Clamp(c Coord) Coord {
	return Coord{
		X: core.Clamp(c.X, 0, g.W-1),
		Y: core.Clamp(c.Y, 0, g.H-1),
	}
}

// Get returns the code at c, or Empty when c is out of bounds.
func (g *Grid) Get(c Coord) Code {
	if !g.InBounds(c) {
		return Empty
	}
	return g.Cells[g.index(c)]
}

// Set writes code at c. Out-of-bounds coordinates are ignored.
func (g *Grid) Set(c Coord, code Code) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = code
	}
}

// SetAll writes code at every coordinate in cs.
func (g *Grid) SetAll(cs []Coord, code Code) {
	for _, c := range cs {
		g.Set(c, code)
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Code, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if both grids have the same extent and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding code.
func (g *Grid) Count(code Code) int {
	n := 0
	for _, c := range g.Cells {
		if c == code {
			n++
		}
	}
	return n
}

// Counts returns the number of cells per code, indexed by code.
func (g *Grid) Counts() [NumCodes]int {
	var counts [NumCodes]int
	for _, c := range g.Cells {
		if c.Valid() {
			counts[c]++
		}
	}
	return counts
}

// Window returns the clamped 3x3 neighbourhood of c in row-major order.
// At an edge or corner the clamped neighbour repeats, so the result always
// has nine entries but may hold fewer distinct cells.
func (g *Grid) Window(c Coord) [9]Coord {
	var w [9]Coord
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			w[i] = g.Clamp(c.Add(dx, dy))
			i++
		}
	}
	return w
}
