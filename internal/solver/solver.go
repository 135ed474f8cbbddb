package solver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spawnproof/internal/grid"
)

// Solver runs the full pipeline: trim, build, preprocess, optimise, annotate.
type Solver struct {
	Oracle Oracle
	Logger *log.Logger
}

// New creates a Solver backed by gophersat that logs to logger.
// A nil logger discards output.
func New(logger *log.Logger) *Solver {
	return &Solver{Oracle: GophersatOracle{}, Logger: logger}
}

// Result is the outcome of a successful solve.
type Result struct {
	// Grid is the trimmed input with a carpet code on every spawnable cell
	// that needs one. All other cells are copied unchanged.
	Grid *grid.Grid

	// Bounds locates Grid inside the input grid.
	Bounds grid.Rect

	Spawnable int
	Carpets   int
	Elapsed   time.Duration
	Stats     Stats
}

// Coverage returns placed carpets as a fraction of spawnable cells.
func (r *Result) Coverage() float64 {
	if r.Spawnable == 0 {
		return 0
	}
	return float64(r.Carpets) / float64(r.Spawnable)
}

// Full returns the annotated grid embedded back into the extent of original.
func (r *Result) Full(original *grid.Grid) *grid.Grid {
	return grid.Embed(original, r.Grid, grid.C(r.Bounds.X, r.Bounds.Y))
}

// Solve computes a minimum carpet placement for g. The input is not modified.
//
// An infeasible instance returns an *InfeasibleError; oracle failures are
// wrapped with ErrOracle.
func (s *Solver) Solve(g *grid.Grid, opts Options) (*Result, error) {
	logger := s.logger()
	start := time.Now()

	trimmed, bounds := grid.Trim(g)
	if trimmed.W != g.W || trimmed.H != g.H {
		logger.Debug("trimmed empty border",
			"from", fmt.Sprintf("%dx%d", g.W, g.H),
			"to", fmt.Sprintf("%dx%d", trimmed.W, trimmed.H))
	}

	logger.Info("preparing the solver")
	model := Build(trimmed, opts)
	logger.Info("found spawnable blocks", "count", len(model.Spawnable))

	red, err := Preprocess(model)
	if err != nil {
		return nil, err
	}
	logger.Debug("preprocessed constraints",
		"clauses", red.Stats.Clauses,
		"satisfied", red.Stats.Satisfied,
		"propagated", red.Stats.Propagated,
		"residual", red.Stats.Residual,
		"vars", red.Stats.Vars)

	assignment := []bool{}
	if red.Problem.NumVars > 0 {
		oracle := s.Oracle
		if oracle == nil {
			oracle = GophersatOracle{}
		}

		logger.Info("solving")
		solveStart := time.Now()
		assignment, err = oracle.Minimize(red.Problem)
		logger.Info("instance solved", "elapsed", time.Since(solveStart).Round(time.Millisecond))

		switch {
		case errors.Is(err, ErrUnsatisfiable):
			return nil, &InfeasibleError{FreeTrapdoor: opts.FreeTrapdoor}
		case err != nil:
			if !errors.Is(err, ErrOracle) {
				err = fmt.Errorf("%w: %w", ErrOracle, err)
			}
			return nil, err
		case len(assignment) != red.Problem.NumVars:
			return nil, fmt.Errorf("%w: got %d values for %d variables",
				ErrOracle, len(assignment), red.Problem.NumVars)
		}
		if !satisfies(red.Problem, assignment) {
			return nil, fmt.Errorf("%w: assignment violates a coverage clause", ErrOracle)
		}
	}

	values := red.Resolve(assignment)
	out := trimmed.Clone()
	carpets := 0
	for _, i := range model.Spawnable {
		if values[i] == Covered {
			out.Cells[i] = grid.Carpet
			carpets++
		}
	}

	return &Result{
		Grid:      out,
		Bounds:    bounds,
		Spawnable: len(model.Spawnable),
		Carpets:   carpets,
		Elapsed:   time.Since(start),
		Stats:     red.Stats,
	}, nil
}

func (s *Solver) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// satisfies reports whether every clause has a false variable.
func satisfies(p *Problem, assignment []bool) bool {
	for _, cl := range p.Clauses {
		ok := false
		for _, v := range cl {
			if !assignment[v-1] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
