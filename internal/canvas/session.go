package canvas

import (
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// DefaultRadius is the circle radius a new session starts with.
const DefaultRadius = 6

// Session holds the interactive editing state for one grid: the active mode,
// the freehand latch, the selected code and any pending gesture.
// Every mutating method returns the cells it wrote.
type Session struct {
	grid     *grid.Grid
	mode     Mode
	drawing  bool
	selected grid.Code

	anchor    grid.Coord
	hasAnchor bool

	radius int
	cursor grid.Coord
}

// NewSession starts an editing session on g in freehand mode with the
// spawnable code selected.
func NewSession(g *grid.Grid) *Session {
	return &Session{
		grid:     g,
		mode:     ModeFreehand,
		selected: grid.Spawnable,
		radius:   DefaultRadius,
	}
}

// Grid returns the grid being edited.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Selected returns the code written by drawing operations.
func (s *Session) Selected() grid.Code { return s.selected }

// Radius returns the circle radius.
func (s *Session) Radius() int { return s.radius }

// Cursor returns the cell under the pointer.
func (s *Session) Cursor() grid.Coord { return s.cursor }

// Drawing reports whether the freehand latch is set.
func (s *Session) Drawing() bool { return s.drawing }

// Anchor returns the pending rectangle corner, if any.
func (s *Session) Anchor() (grid.Coord, bool) { return s.anchor, s.hasAnchor }

// ToggleMode switches to m, or back to freehand when m is already active.
// Pending gestures are discarded.
func (s *Session) ToggleMode(m Mode) {
	if s.mode == m {
		s.mode = ModeFreehand
	} else {
		s.mode = m
	}
	s.drawing = false
	s.hasAnchor = false
}

// Select changes the code written by drawing operations.
// Codes outside the enumeration are rejected.
func (s *Session) Select(code grid.Code) bool {
	if !code.Valid() {
		return false
	}
	s.selected = code
	return true
}

// SetRadius sets the circle radius, raising it to MinRadius if needed.
func (s *Session) SetRadius(r int) {
	if r < MinRadius {
		r = MinRadius
	}
	s.radius = r
}

// Scroll adjusts the circle radius by delta. It has no effect outside
// circle mode.
func (s *Session) Scroll(delta int) {
	if s.mode != ModeCircle {
		return
	}
	s.SetRadius(s.radius + delta)
}

// PointerMove places the cursor on c, clamped into the grid.
func (s *Session) PointerMove(c grid.Coord) {
	s.cursor = s.grid.Clamp(c)
}

// MoveCursor shifts the cursor by (dx, dy), saturating at the grid edge.
func (s *Session) MoveCursor(dx, dy int) {
	s.PointerMove(s.cursor.Add(dx, dy))
}

// PointerDown handles a primary click at c according to the active mode.
func (s *Session) PointerDown(c grid.Coord) []grid.Coord {
	s.PointerMove(c)

	switch s.mode {
	case ModeFreehand:
		s.drawing = true
		return s.write([]grid.Coord{s.cursor})

	case ModeRectangle:
		if !s.hasAnchor {
			s.anchor = s.cursor
			s.hasAnchor = true
			return nil
		}
		s.hasAnchor = false
		return s.write(RectPerimeter(s.anchor, s.cursor))

	case ModeCircle:
		return s.write(Clip(s.grid, CirclePerimeter(s.cursor, s.radius)))

	case ModeFill:
		region := FloodFill(s.grid, s.cursor, s.selected)
		s.mode = ModeFreehand
		return s.write(region)
	}
	return nil
}

// PointerUp releases the freehand latch.
func (s *Session) PointerUp() {
	s.drawing = false
}

// Click performs a full press and release at the cursor.
func (s *Session) Click() []grid.Coord {
	written := s.PointerDown(s.cursor)
	s.PointerUp()
	return written
}

// Tick runs once per frame. While the freehand latch is set it writes the
// selected code under the cursor.
func (s *Session) Tick() []grid.Coord {
	if s.mode != ModeFreehand || !s.drawing {
		return nil
	}
	return s.write([]grid.Coord{s.cursor})
}

// Preview returns the cells the pending rectangle or circle would write if
// committed now. It never modifies the grid.
func (s *Session) Preview() []grid.Coord {
	switch s.mode {
	case ModeRectangle:
		if s.hasAnchor {
			return RectPerimeter(s.anchor, s.cursor)
		}
	case ModeCircle:
		return Clip(s.grid, CirclePerimeter(s.cursor, s.radius))
	}
	return nil
}

func (s *Session) write(cs []grid.Coord) []grid.Coord {
	s.grid.SetAll(cs, s.selected)
	return cs
}
