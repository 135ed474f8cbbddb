package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spawnproof/internal/canvas"
	"github.com/vovakirdan/spawnproof/internal/core"
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("16")),
	core.ColorStone:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("243")),
	core.ColorBrick:   lipgloss.NewStyle().Foreground(lipgloss.Color("216")).Background(lipgloss.Color("124")),
	core.ColorWood:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Background(lipgloss.Color("137")),
	core.ColorWool:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("231")),
	core.ColorPreview: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("117")),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
}

// tiles is the fixed code to tile table.
var tiles = [grid.NumCodes]core.Cell{
	grid.Empty:     {Rune: '·', Color: core.ColorEmpty},
	grid.Spawnable: {Rune: '▒', Color: core.ColorStone},
	grid.Blocked:   {Rune: '▓', Color: core.ColorBrick},
	grid.Anchor:    {Rune: '╬', Color: core.ColorWood},
	grid.Carpet:    {Rune: '░', Color: core.ColorWool},
}

// Tile returns the screen cell a code is drawn with.
func Tile(code grid.Code) core.Cell {
	if !code.Valid() {
		return core.Cell{Rune: '?', Color: core.ColorDefault}
	}
	return tiles[code]
}

// DrawGrid paints every cell of g as a tile block according to layout.
func DrawGrid(s *core.Screen, g *grid.Grid, layout canvas.Layout) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := grid.C(x, y)
			drawTile(s, layout, c, Tile(g.Get(c)))
		}
	}
}

func drawTile(s *core.Screen, layout canvas.Layout, c grid.Coord, cell core.Cell) {
	px, py := layout.Origin(c)
	s.FillRect(px, py, layout.CellW, layout.CellH, cell)
}

// RenderGrid returns g rendered with coloured tiles.
func RenderGrid(g *grid.Grid, layout canvas.Layout) string {
	layout.OriginX, layout.OriginY = 0, 0
	w, h := layout.Size(g.W, g.H)
	s := core.NewScreen(w, h)
	DrawGrid(s, g, layout)
	return RenderScreen(s)
}

// Blueprint returns g rendered as plain text tiles.
func Blueprint(g *grid.Grid, layout canvas.Layout) string {
	layout.OriginX, layout.OriginY = 0, 0
	w, h := layout.Size(g.W, g.H)
	s := core.NewScreen(w, h)
	DrawGrid(s, g, layout)
	return s.String() + "\n"
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
