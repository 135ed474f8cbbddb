// Package solver computes the minimum set of carpet placements that stops
// mobs from spawning on a grid.
//
// Every cell gets one boolean literal meaning "this cell stays uncovered".
// Fixed cells are pinned (empty and anchor cells true, blocked and carpeted
// cells false), spawnable cells are free. Each spawnable cell contributes a
// coverage clause over its clamped 3x3 window: at least one literal in the
// window must be false. The objective minimises the number of false literals,
// which is the number of carpets to place.
//
// Constraints are simplified by constant propagation before the remaining
// free literals are handed to an Oracle.
package solver

import (
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// Value is the state of a literal during model construction and propagation.
type Value int8

const (
	Free      Value = iota // decided by the oracle
	Uncovered              // literal true: no carpet here
	Covered                // literal false: carpet or carpet-equivalent here
)

// String returns a human-readable name for the value.
func (v Value) String() string {
	switch v {
	case Free:
		return "free"
	case Uncovered:
		return "uncovered"
	case Covered:
		return "covered"
	default:
		return "unknown"
	}
}

// Options controls optional constraints.
type Options struct {
	// FreeTrapdoor keeps carpets off every spawnable cell whose 3x3 window
	// contains an anchor, so nothing is placed on or next to a trapdoor.
	// Those cells must then be covered by a carpet further away.
	FreeTrapdoor bool
}

// Clause requires at least one of its cells to be covered.
// Owner is the spawnable cell the clause protects.
type Clause struct {
	Owner int
	Cells []int
}

// Model is the constraint system for one grid. Cells are addressed by their
// row-major index.
type Model struct {
	W, H      int
	Values    []Value
	Clauses   []Clause
	Spawnable []int
	Options   Options
}

// Build translates g into a constraint model.
//
// Window neighbours outside the grid are clamped to the nearest cell, so an
// edge or corner cell sees fewer distinct covering positions than an interior
// one. Repeated cells collapse into a single clause entry; the clause stays
// logically identical to the nine-literal form.
func Build(g *grid.Grid, opts Options) *Model {
	m := &Model{
		W:       g.W,
		H:       g.H,
		Values:  make([]Value, len(g.Cells)),
		Options: opts,
	}

	for i, code := range g.Cells {
		switch code {
		case grid.Empty, grid.Anchor:
			m.Values[i] = Uncovered
		case grid.Blocked, grid.Carpet:
			m.Values[i] = Covered
		case grid.Spawnable:
			m.Values[i] = Free
			m.Spawnable = append(m.Spawnable, i)
		}
	}

	for _, i := range m.Spawnable {
		c := grid.C(i%g.W, i/g.W)
		window := g.Window(c)

		cells := make([]int, 0, len(window))
		seen := make(map[int]bool, len(window))
		nearAnchor := false
		for _, n := range window {
			j := n.Y*g.W + n.X
			if g.Cells[j] == grid.Anchor {
				nearAnchor = true
			}
			if !seen[j] {
				seen[j] = true
				cells = append(cells, j)
			}
		}

		if opts.FreeTrapdoor && nearAnchor {
			m.Values[i] = Uncovered
		}
		m.Clauses = append(m.Clauses, Clause{Owner: i, Cells: cells})
	}

	return m
}

// Coord returns the grid coordinate of cell index i.
func (m *Model) Coord(i int) grid.Coord {
	return grid.C(i%m.W, i/m.W)
}
