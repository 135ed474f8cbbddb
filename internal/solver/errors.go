package solver

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/spawnproof/internal/grid"
)

var (
	// ErrInfeasible is wrapped when no carpet placement satisfies every constraint.
	ErrInfeasible = errors.New("layout cannot be spawn-proofed")

	// ErrUnsatisfiable is returned by an Oracle for an unsatisfiable problem.
	ErrUnsatisfiable = errors.New("problem is unsatisfiable")

	// ErrOracle is wrapped when the oracle fails or crashes.
	ErrOracle = errors.New("oracle failure")
)

// InfeasibleError reports an instance without a valid covering.
type InfeasibleError struct {
	// Cell is a spawnable cell that cannot be covered, when known.
	Cell    grid.Coord
	HasCell bool

	// FreeTrapdoor records whether the trapdoor constraint was active.
	FreeTrapdoor bool
}

func (e *InfeasibleError) Error() string {
	if e.HasCell {
		return fmt.Sprintf("%v: spawnable cell %v cannot be covered", ErrInfeasible, e.Cell)
	}
	return ErrInfeasible.Error()
}

func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasible
}

// Hint suggests how to make the instance feasible, or returns "".
func (e *InfeasibleError) Hint() string {
	if e.FreeTrapdoor {
		return "this is most likely caused by the free-trapdoor constraint; try solving again without it"
	}
	return ""
}
