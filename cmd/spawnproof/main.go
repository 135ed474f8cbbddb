// spawnproof computes the fewest carpets that stop mobs from spawning on a
// Minecraft floor layout, and provides a terminal canvas to draw layouts.
//
// Usage:
//
//	spawnproof draw                 - Draw a layout in the terminal editor
//	spawnproof solve --path <file>  - Place the minimum number of carpets
//	spawnproof show <file>          - Print a layout or solution
//	spawnproof history              - List previous solver runs
//	spawnproof serve                - Start SSH server for remote drawing
//
// Global flags:
//
//	--fps <rate>     - Editor tick rate (default: from config, 60)
//	--db <path>      - Run history database (default: ~/.spawnproof/history.db)
//	--config <path>  - Configuration file
//	--verbose, -v    - Debug logging
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spawnproof/internal/canvas"
	"github.com/vovakirdan/spawnproof/internal/config"
	"github.com/vovakirdan/spawnproof/internal/solver"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	// appConfig is loaded before any subcommand runs.
	appConfig = config.Default()
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var ie *solver.InfeasibleError
		if errors.As(err, &ie) && ie.Hint() != "" {
			fmt.Fprintln(os.Stderr, ie.Hint())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spawnproof",
	Short: "Spawn-proof Minecraft floors with the fewest carpets",
	Long: `spawnproof finds the minimum set of carpets that prevents mob spawning
on a floor layout, and lets you draw layouts in the terminal.

Cell codes used in layout files:
  0 - empty (no block)
  1 - spawnable block
  2 - block that already prevents spawning
  3 - trapdoor
  4 - carpet

Examples:
  spawnproof draw --size 20 --out hall.json
  spawnproof solve --path hall.json
  spawnproof solve --path hall.json --freetrapdoor --o hall-notrap
  spawnproof show solutions/solution.json
  spawnproof history
  spawnproof serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Editor tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spawnproof/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration, applies explicitly set global flags and
// attaches the logger to the command context.
func setup(cmd *cobra.Command, _ []string) error {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Editor.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger.Debug("configuration loaded", "config", flagConfig, "db", cfg.Storage.DBPath)
	return nil
}

// editorLayout returns the cell layout configured for the editor.
func editorLayout(cfg config.Config) canvas.Layout {
	return canvas.Layout{
		CellW:  cfg.Editor.CellWidth,
		CellH:  cfg.Editor.CellHeight,
		Margin: cfg.Editor.Margin,
	}
}
