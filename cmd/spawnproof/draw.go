package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spawnproof/internal/grid"
	"github.com/vovakirdan/spawnproof/internal/platform/tui"
)

var (
	flagDrawSize int
	flagDrawPath string
	flagDrawOut  string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a layout in the terminal editor",
	Long: `Open the canvas editor on a new square layout or an existing file.

Mouse:
  Left button   - Draw / place rectangle corner / place circle / fill
  Wheel         - Change circle radius (circle mode)

Keys:
  0-4           - Select the block to draw
  R / C / F     - Toggle rectangle / circle / fill mode
  +/-           - Change circle radius (circle mode)
  Arrows/hjkl   - Move the cursor, Enter clicks
  S             - Save the layout and exit
  P             - Export a text blueprint and exit
  Q/Esc         - Exit without saving

Examples:
  spawnproof draw
  spawnproof draw --size 30 --out hall.json
  spawnproof draw --path hall.json`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().IntVar(&flagDrawSize, "size", 0, "Side of a new square canvas (default: from config)")
	drawCmd.Flags().StringVar(&flagDrawPath, "path", "", "Layout file to open instead of a new canvas")
	drawCmd.Flags().StringVar(&flagDrawOut, "out", "", "File written on save (default: --path, or from config)")
}

func runDraw(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())
	cfg := appConfig

	var g *grid.Grid
	if flagDrawPath != "" {
		loaded, err := grid.Load(flagDrawPath)
		if err != nil {
			return err
		}
		g = loaded
		logger.Debug("opened layout", "path", flagDrawPath, "width", g.W, "height", g.H)
	} else {
		size := cfg.Editor.Size
		if flagDrawSize > 0 {
			size = flagDrawSize
		}
		g = grid.New(size, size)
	}

	out := flagDrawOut
	switch {
	case out != "":
	case flagDrawPath != "":
		out = flagDrawPath
	default:
		out = cfg.Editor.Output
	}

	layout := editorLayout(cfg)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		needW, needH := layout.Size(g.W, g.H)
		if needW > w || needH+3 > h {
			logger.Warn("canvas is larger than the terminal",
				"canvas", []int{needW, needH + 3},
				"terminal", []int{w, h})
		}
	}

	final, err := tui.Run(g, tui.Options{
		Layout:   layout,
		TickRate: cfg.Editor.TickRate,
		Radius:   cfg.Editor.CircleRadius,
		Output:   out,
	})
	if err != nil {
		return err
	}

	switch final.Outcome() {
	case tui.OutcomeSaved:
		logger.Info("layout saved", "path", final.Written())
	case tui.OutcomeExported:
		logger.Info("blueprint exported", "path", final.Written())
	default:
		logger.Info("left the editor without saving")
	}
	return nil
}
