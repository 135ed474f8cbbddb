package grid

import "testing"

func mustRows(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]int
		expected [][]int
		bounds   Rect
	}{
		{
			name:     "no border",
			rows:     [][]int{{1, 0}, {0, 1}},
			expected: [][]int{{1, 0}, {0, 1}},
			bounds:   Rect{0, 0, 2, 2},
		},
		{
			name: "border on all sides",
			rows: [][]int{
				{0, 0, 0, 0},
				{0, 1, 2, 0},
				{0, 0, 3, 0},
				{0, 0, 0, 0},
			},
			expected: [][]int{{1, 2}, {0, 3}},
			bounds:   Rect{1, 1, 2, 2},
		},
		{
			name: "non-square",
			rows: [][]int{
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 1, 1, 0},
			},
			expected: [][]int{{1, 1}},
			bounds:   Rect{3, 1, 2, 1},
		},
		{
			name: "interior empty rows kept",
			rows: [][]int{
				{1, 0, 0},
				{0, 0, 0},
				{0, 0, 1},
			},
			expected: [][]int{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
			bounds:   Rect{0, 0, 3, 3},
		},
		{
			name:     "all empty",
			rows:     [][]int{{0, 0, 0}, {0, 0, 0}},
			expected: [][]int{{0}},
			bounds:   Rect{0, 0, 1, 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustRows(t, tc.rows)
			original := g.Clone()

			trimmed, bounds := Trim(g)
			if bounds != tc.bounds {
				t.Errorf("bounds = %+v, expected %+v", bounds, tc.bounds)
			}
			if !trimmed.Equal(mustRows(t, tc.expected)) {
				t.Errorf("Trim() = %v, expected %v", trimmed.Rows(), tc.expected)
			}
			if !g.Equal(original) {
				t.Error("Trim() must not modify its input")
			}

			again, _ := Trim(trimmed)
			if !again.Equal(trimmed) {
				t.Errorf("Trim() is not idempotent: %v -> %v", trimmed.Rows(), again.Rows())
			}
		})
	}
}

func TestEmbed(t *testing.T) {
	g := mustRows(t, [][]int{
		{0, 0, 0},
		{0, 1, 1},
		{0, 0, 0},
	})

	trimmed, bounds := Trim(g)
	trimmed.Set(C(0, 0), Carpet)

	full := Embed(g, trimmed, C(bounds.X, bounds.Y))
	expected := mustRows(t, [][]int{
		{0, 0, 0},
		{0, 4, 1},
		{0, 0, 0},
	})
	if !full.Equal(expected) {
		t.Errorf("Embed() = %v", full.Rows())
	}
	if g.Get(C(1, 1)) != Spawnable {
		t.Error("Embed() must not modify dst")
	}
}
