package grid

// Bounds returns the smallest rectangle whose outer rows and columns each
// hold at least one non-empty cell. Sides are trimmed independently and never
// past a non-empty row or column.
//
// A grid with no non-empty cell has no such rectangle; Bounds then returns the
// single cell at the origin so the result is always at least 1x1.
func Bounds(g *Grid) Rect {
	top := 0
	for top < g.H && rowEmpty(g, top) {
		top++
	}
	if top == g.H {
		return Rect{X: 0, Y: 0, W: 1, H: 1}
	}

	bottom := g.H - 1
	for bottom > top && rowEmpty(g, bottom) {
		bottom--
	}

	left := 0
	for left < g.W && colEmpty(g, left) {
		left++
	}
	right := g.W - 1
	for right > left && colEmpty(g, right) {
		right--
	}

	return Rect{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}
}

// Trim returns a copy of g cut down to Bounds(g), and the bounds used.
// The original grid is not modified.
func Trim(g *Grid) (*Grid, Rect) {
	b := Bounds(g)
	return Crop(g, b), b
}

// Crop returns a copy of the cells of g inside r.
func Crop(g *Grid, r Rect) *Grid {
	out := New(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			out.Set(C(x, y), g.Get(C(r.X+x, r.Y+y)))
		}
	}
	return out
}

// Embed returns a copy of dst with src written at offset at.
// Cells of src falling outside dst are dropped.
func Embed(dst, src *Grid, at Coord) *Grid {
	out := dst.Clone()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			out.Set(at.Add(x, y), src.Get(C(x, y)))
		}
	}
	return out
}

// A row or column is empty when its codes sum to zero.
func rowEmpty(g *Grid, y int) bool {
	sum := 0
	for x := 0; x < g.W; x++ {
		sum += int(g.Cells[y*g.W+x])
	}
	return sum == 0
}

func colEmpty(g *Grid, x int) bool {
	sum := 0
	for y := 0; y < g.H; y++ {
		sum += int(g.Cells[y*g.W+x])
	}
	return sum == 0
}
