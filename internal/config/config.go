// Package config provides YAML-based configuration loading for the editor,
// the solver and the run history.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete spawnproof configuration.
type Config struct {
	Editor  EditorConfig  `yaml:"editor"`
	Solver  SolverConfig  `yaml:"solver"`
	Storage StorageConfig `yaml:"storage"`
}

// EditorConfig controls the interactive canvas.
type EditorConfig struct {
	Size         int    `yaml:"size"`      // canvas side in cells
	TickRate     int    `yaml:"tick_rate"` // ticks per second
	CellWidth    int    `yaml:"cell_width"`
	CellHeight   int    `yaml:"cell_height"`
	Margin       int    `yaml:"margin"`
	CircleRadius int    `yaml:"circle_radius"`
	Output       string `yaml:"output"` // pattern file written on save
}

// SolverConfig controls the solve command.
type SolverConfig struct {
	OutputDir    string `yaml:"output_dir"`
	FreeTrapdoor bool   `yaml:"free_trapdoor"`
	Cache        bool   `yaml:"cache"` // reuse stored solutions for identical inputs
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	e := c.Editor
	switch {
	case e.Size < 1:
		return fmt.Errorf("config: editor.size must be positive, got %d", e.Size)
	case e.TickRate < 1:
		return fmt.Errorf("config: editor.tick_rate must be positive, got %d", e.TickRate)
	case e.CellWidth < 1 || e.CellHeight < 1:
		return fmt.Errorf("config: editor cell size must be positive, got %dx%d", e.CellWidth, e.CellHeight)
	case e.Margin < 0:
		return fmt.Errorf("config: editor.margin must not be negative, got %d", e.Margin)
	case e.CircleRadius < 2:
		return fmt.Errorf("config: editor.circle_radius must be at least 2, got %d", e.CircleRadius)
	case e.Output == "":
		return errors.New("config: editor.output must not be empty")
	case c.Solver.OutputDir == "":
		return errors.New("config: solver.output_dir must not be empty")
	}
	return nil
}
