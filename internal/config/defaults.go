package config

import (
	_ "embed"
)

//go:embed defaults/spawnproof.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Size:         15,
			TickRate:     60,
			CellWidth:    2,
			CellHeight:   1,
			Margin:       0,
			CircleRadius: 6,
			Output:       "pattern.json",
		},
		Solver: SolverConfig{
			OutputDir:    "solutions",
			FreeTrapdoor: false,
			Cache:        true,
		},
		Storage: StorageConfig{
			DBPath: "~/.spawnproof/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
