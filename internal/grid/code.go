// Package grid provides the cell grid shared by the canvas editor and the
// spawn-proofing solver, together with its persisted JSON format and the
// bounding-box normalizer.
package grid

// Code is the value stored in a grid cell.
type Code uint8

// Cell codes. The numeric values are part of the persisted format.
const (
	Empty     Code = iota // no block
	Spawnable             // surface a mob can spawn on
	Blocked               // surface that is already non-spawnable
	Anchor                // trapdoor or similar fixed element
	Carpet                // carpet placed by the solver
)

// NumCodes is the number of valid cell codes.
const NumCodes = 5

// Valid reports whether c belongs to the cell code enumeration.
func (c Code) Valid() bool {
	return c < NumCodes
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case Empty:
		return "empty"
	case Spawnable:
		return "spawnable"
	case Blocked:
		return "blocked"
	case Anchor:
		return "anchor"
	case Carpet:
		return "carpet"
	default:
		return "unknown"
	}
}

// AllCodes returns every valid code in ascending order.
func AllCodes() []Code {
	return []Code{Empty, Spawnable, Blocked, Anchor, Carpet}
}
