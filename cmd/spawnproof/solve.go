package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spawnproof/internal/grid"
	"github.com/vovakirdan/spawnproof/internal/solver"
	"github.com/vovakirdan/spawnproof/internal/storage"
)

// defaultSolutionName is the output file name when --o is not given.
const defaultSolutionName = "solution.json"

var (
	flagSolvePath    string
	flagSolveOut     string
	flagSolveDir     string
	flagFreeTrapdoor bool
	flagSolveFull    bool
	flagSolveNoCache bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Place the minimum number of carpets on a layout",
	Long: `Compute the fewest carpets that make every spawnable block safe.

A spawnable block (code 1) is safe when a carpet (code 4) or a block that
already prevents spawning (code 2) lies within one step of it, diagonals
included. Carpets are only placed on spawnable blocks.

The solution is written to <dir>/<name>, cropped to the smallest rectangle
holding every non-empty row and column unless --full is set. Runs are
recorded in the history database, and an identical layout solved with the
same options reuses the stored solution unless --no-cache is set.

Examples:
  spawnproof solve --path hall.json
  spawnproof solve --path hall.json --o hall-solved --dir out
  spawnproof solve --path hall.json --freetrapdoor
  spawnproof solve --path hall.json --full --no-cache`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolvePath, "path", "", "Layout file to solve")
	solveCmd.Flags().StringVar(&flagSolveOut, "o", defaultSolutionName, "Name of the output file")
	solveCmd.Flags().StringVar(&flagSolveDir, "dir", "", "Directory for solutions (default: from config)")
	solveCmd.Flags().BoolVar(&flagFreeTrapdoor, "freetrapdoor", false, "Keep carpets away from trapdoors")
	solveCmd.Flags().BoolVar(&flagSolveFull, "full", false, "Write the solution at the input's original size")
	solveCmd.Flags().BoolVar(&flagSolveNoCache, "no-cache", false, "Always run the solver")
	_ = solveCmd.MarkFlagRequired("path")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := appConfig

	req := solveRequest{
		Input:    flagSolvePath,
		Name:     flagSolveOut,
		Dir:      cfg.Solver.OutputDir,
		Full:     flagSolveFull,
		UseCache: cfg.Solver.Cache && !flagSolveNoCache,
		Options:  solver.Options{FreeTrapdoor: cfg.Solver.FreeTrapdoor},
	}
	if cmd.Flags().Changed("dir") {
		req.Dir = flagSolveDir
	}
	if cmd.Flags().Changed("freetrapdoor") {
		req.Options.FreeTrapdoor = flagFreeTrapdoor
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	_, err = solveFile(ctx, store, req)
	return err
}

type solveRequest struct {
	Input    string
	Name     string
	Dir      string
	Full     bool
	UseCache bool
	Options  solver.Options
}

type solveReport struct {
	Path   string
	Run    *storage.Run
	Cached bool
}

// solveFile solves one layout file, writes the solution and records the run.
// store may be nil, which disables both the history and the cache.
func solveFile(ctx context.Context, store *storage.Store, req solveRequest) (*solveReport, error) {
	logger := loggerFromContext(ctx)
	start := time.Now()

	logger.Info("opening", "path", req.Input)
	g, err := grid.Load(req.Input)
	if err != nil {
		return nil, err
	}

	run := &storage.Run{
		InputPath:    req.Input,
		InputHash:    storage.HashGrid(g),
		FreeTrapdoor: req.Options.FreeTrapdoor,
		Width:        g.W,
		Height:       g.H,
	}
	report := &solveReport{Run: run}

	if req.UseCache && store != nil {
		cached, err := store.CachedSolution(run.InputHash, req.Options.FreeTrapdoor)
		if err != nil {
			logger.Warn("solution cache unavailable", "error", err)
		}
		if cached != nil {
			logger.Info("reusing stored solution", "run", cached.ID)
			run.Solution = cached.Solution
			run.Bounds = cached.Bounds
			run.Spawnable = cached.Spawnable
			run.Carpets = cached.Carpets
			report.Cached = true
		}
	}

	if !report.Cached {
		res, err := solver.New(logger).Solve(g, req.Options)
		if err != nil {
			run.Status = storage.StatusFailed
			if errors.Is(err, solver.ErrInfeasible) {
				run.Status = storage.StatusInfeasible
				logger.Warn("it's impossible to spawn-proof this layout")
			}
			run.Elapsed = time.Since(start)
			record(ctx, store, run)
			return nil, err
		}
		run.Solution = res.Grid
		run.Bounds = res.Bounds
		run.Spawnable = res.Spawnable
		run.Carpets = res.Carpets
	}

	if run.Spawnable > 0 {
		run.Coverage = float64(run.Carpets) / float64(run.Spawnable)
	}
	logger.Infof("placed %d carpets (%.2f%% of the total spawnable surface)", run.Carpets, run.Coverage*100)

	out := run.Solution
	if req.Full {
		out = grid.Embed(g, run.Solution, grid.C(run.Bounds.X, run.Bounds.Y))
	}

	p := newProgress(logger)
	path := outputPath(req.Dir, req.Name)
	if err := grid.Save(path, out); err != nil {
		return nil, fmt.Errorf("saving solution: %w", err)
	}
	p.done("solution saved to " + path)

	run.Status = storage.StatusSolved
	run.OutputPath = path
	run.Elapsed = time.Since(start)
	record(ctx, store, run)

	report.Path = path
	return report, nil
}

// outputPath joins dir and name, appending .json when name lacks it.
func outputPath(dir, name string) string {
	if name == "" {
		name = defaultSolutionName
	}
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		name += ".json"
	}
	return filepath.Join(dir, name)
}

// record saves run to the history. Failures are logged, not returned.
func record(ctx context.Context, store *storage.Store, run *storage.Run) {
	if store == nil {
		return
	}
	if _, err := store.SaveRun(run); err != nil {
		loggerFromContext(ctx).Warn("could not record run", "error", err)
	}
}
