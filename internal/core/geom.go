// Package core provides small pure helpers shared by the editor, the solver
// and the terminal layer. It has no external dependencies (especially no
// Bubble Tea) to keep geometry and rendering buffers testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Span returns the inclusive range between a and b in ascending order.
func Span(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}
