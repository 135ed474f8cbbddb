package solver

import (
	"slices"
	"strconv"
	"strings"
)

// Problem is the residual instance handed to an Oracle.
// Variables are numbered from 1 and mean "uncovered". Every clause lists
// variables of which at least one must be false; the cost to minimise is the
// number of false variables.
type Problem struct {
	NumVars int
	Clauses [][]int
}

// Stats describes how much preprocessing shrank the model.
type Stats struct {
	Clauses    int // coverage clauses built
	Satisfied  int // clauses dropped because a cell in them is covered
	Propagated int // cells forced to carry a carpet by unit clauses
	Released   int // free cells left in no clause, resolved uncovered
	Residual   int // distinct clauses handed to the oracle
	Vars       int // free variables handed to the oracle
}

// Reduction is a preprocessed model: every cell is resolved except those
// mapped to a Problem variable.
type Reduction struct {
	Problem *Problem
	Values  []Value
	Vars    []int // Vars[v-1] is the cell index of variable v
	Stats   Stats
}

// Preprocess substitutes fixed literals through the coverage clauses and
// propagates unit clauses to a fixpoint.
//
// A clause holding a covered cell is satisfied and dropped. Uncovered cells
// are removed from the rest; a clause left empty makes the instance
// infeasible, a clause left with one free cell forces that cell covered.
// Duplicate residual clauses are merged and free cells that appear in no
// clause are resolved uncovered, which is their cost-free value.
func Preprocess(m *Model) (*Reduction, error) {
	values := slices.Clone(m.Values)
	stats := Stats{Clauses: len(m.Clauses)}

	active := make([]bool, len(m.Clauses))
	for i := range active {
		active[i] = true
	}

	free := make([]int, 0, 9)
	for changed := true; changed; {
		changed = false
		for ci, cl := range m.Clauses {
			if !active[ci] {
				continue
			}

			satisfied := false
			free = free[:0]
			for _, cell := range cl.Cells {
				switch values[cell] {
				case Covered:
					satisfied = true
				case Free:
					free = append(free, cell)
				}
			}

			switch {
			case satisfied:
				active[ci] = false
				stats.Satisfied++
			case len(free) == 0:
				return nil, &InfeasibleError{
					Cell:         m.Coord(cl.Owner),
					HasCell:      true,
					FreeTrapdoor: m.Options.FreeTrapdoor,
				}
			case len(free) == 1:
				values[free[0]] = Covered
				active[ci] = false
				stats.Propagated++
				changed = true
			}
		}
	}

	// Residual clauses contain only free cells now.
	used := make(map[int]bool)
	seen := make(map[string]bool)
	var residual [][]int
	for ci, cl := range m.Clauses {
		if !active[ci] {
			continue
		}
		cells := make([]int, 0, len(cl.Cells))
		for _, cell := range cl.Cells {
			if values[cell] == Free {
				cells = append(cells, cell)
			}
		}
		slices.Sort(cells)

		key := clauseKey(cells)
		if seen[key] {
			continue
		}
		seen[key] = true
		residual = append(residual, cells)
		for _, cell := range cells {
			used[cell] = true
		}
	}

	red := &Reduction{Values: values}
	varOf := make(map[int]int, len(used))
	for cell, v := range values {
		if v != Free {
			continue
		}
		if !used[cell] {
			values[cell] = Uncovered
			stats.Released++
			continue
		}
		red.Vars = append(red.Vars, cell)
		varOf[cell] = len(red.Vars)
	}

	clauses := make([][]int, len(residual))
	for i, cells := range residual {
		vars := make([]int, len(cells))
		for j, cell := range cells {
			vars[j] = varOf[cell]
		}
		clauses[i] = vars
	}

	stats.Residual = len(clauses)
	stats.Vars = len(red.Vars)
	red.Problem = &Problem{NumVars: len(red.Vars), Clauses: clauses}
	red.Stats = stats
	return red, nil
}

// Resolve merges an oracle assignment into the reduction's values.
// assignment[v-1] is true when variable v is uncovered.
func (r *Reduction) Resolve(assignment []bool) []Value {
	values := slices.Clone(r.Values)
	for i, cell := range r.Vars {
		if i < len(assignment) && assignment[i] {
			values[cell] = Uncovered
		} else {
			values[cell] = Covered
		}
	}
	return values
}

func clauseKey(cells []int) string {
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}
