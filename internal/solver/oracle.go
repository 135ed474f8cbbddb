package solver

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
)

// Oracle finds an optimal assignment for a residual Problem.
//
// Minimize returns one boolean per variable (index v-1, true meaning
// uncovered) such that every clause has a false variable and the number of
// false variables is minimal. It returns ErrUnsatisfiable when no such
// assignment exists. Any optimal assignment is acceptable.
type Oracle interface {
	Minimize(p *Problem) ([]bool, error)
}

// GophersatOracle solves problems with the gophersat pseudo-boolean optimizer.
type GophersatOracle struct {
	// Verbose enables the solver's own progress output on stdout.
	Verbose bool
}

// Minimize implements Oracle.
func (o GophersatOracle) Minimize(p *Problem) (model []bool, err error) {
	if p.NumVars == 0 {
		return []bool{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = fmt.Errorf("%w: gophersat panicked: %v", ErrOracle, r)
		}
	}()

	constrs := make([]solver.PBConstr, 0, len(p.Clauses))
	for _, cl := range p.Clauses {
		lits := make([]int, len(cl))
		for i, v := range cl {
			lits[i] = -v // at least one variable false
		}
		constrs = append(constrs, solver.PropClause(lits...))
	}

	pb := solver.ParsePBConstrs(constrs)

	// Each false variable costs one carpet.
	cost := make([]solver.Lit, p.NumVars)
	weights := make([]int, p.NumVars)
	for v := 1; v <= p.NumVars; v++ {
		cost[v-1] = solver.IntToLit(int32(-v))
		weights[v-1] = 1
	}
	pb.SetCostFunc(cost, weights)

	s := solver.New(pb)
	s.Verbose = o.Verbose
	if s.Minimize() < 0 {
		return nil, ErrUnsatisfiable
	}

	full := s.Model()
	if len(full) < p.NumVars {
		return nil, fmt.Errorf("%w: model has %d variables, expected %d", ErrOracle, len(full), p.NumVars)
	}
	return full[:p.NumVars], nil
}

var _ Oracle = GophersatOracle{}
