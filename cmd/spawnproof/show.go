package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spawnproof/internal/grid"
	"github.com/vovakirdan/spawnproof/internal/platform/tui"
)

var flagShowPlain bool

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a layout or solution",
	Long: `Render a layout file with coloured tiles followed by per-block counts.

Examples:
  spawnproof show hall.json
  spawnproof show solutions/solution.json --plain > blueprint.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowPlain, "plain", false, "Print plain text tiles without colours or counts")
}

var (
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func runShow(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}

	layout := editorLayout(appConfig)
	out := cmd.OutOrStdout()

	if flagShowPlain {
		fmt.Fprint(out, tui.Blueprint(g, layout))
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s (%dx%d)", args[0], g.W, g.H)))
	fmt.Fprintln(out, tui.RenderGrid(g, layout))
	fmt.Fprintln(out, legend(g))
	return nil
}

// legend lists every code with its tile and count.
func legend(g *grid.Grid) string {
	counts := g.Counts()
	parts := make([]string, 0, len(counts))
	for _, code := range grid.AllCodes() {
		tile := tui.Tile(code)
		parts = append(parts, fmt.Sprintf("%c %d %s: %d", tile.Rune, code, code, counts[code]))
	}

	line := strings.Join(parts, "   ")
	if spawnable := counts[grid.Spawnable] + counts[grid.Carpet]; counts[grid.Carpet] > 0 && spawnable > 0 {
		line += fmt.Sprintf("\ncarpets cover %.2f%% of the spawnable surface",
			float64(counts[grid.Carpet])/float64(spawnable)*100)
	}
	return legendStyle.Render(line)
}
