package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// run is a single maze generation of a batch.
type run struct {
	id   uuid.UUID
	seed int64
	maze *maze.Maze
}

var appLogger = log.New(os.Stderr, config.ColorCyan+"[MAZEGEN] "+config.ColorReset, log.LstdFlags)

func main() {
	cfg := config.Envs

	alg, err := generator.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		appLogger.Printf("%s[FATAL]%s %v (supported: %v)", config.LogErrorColor, config.LogColorReset, err, generator.Algorithms())
		os.Exit(1)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	appLogger.Printf("%s[INFO]%s generating %d %dx%d maze(s) with %s, base seed %d",
		config.LogInfoColor, config.LogColorReset, cfg.Count, cfg.Height, cfg.Width, alg, baseSeed)

	runs, err := generateBatch(cfg, alg, baseSeed, os.Stderr)
	if err != nil {
		appLogger.Printf("%s[FATAL]%s %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	for _, r := range runs {
		printRun(os.Stdout, r, alg, cfg.Debug)
	}
}

// generateBatch generates cfg.Count independent mazes, at most cfg.Workers at a
// time. Maze i is seeded with baseSeed+i so a batch can be reproduced.
func generateBatch(cfg config.Config, alg generator.Algorithm, baseSeed int64, logOutput io.Writer) ([]run, error) {
	runs := make([]run, cfg.Count)

	var g errgroup.Group
	g.SetLimit(cfg.Workers)

	for i := range runs {
		i := i // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			id := uuid.New()
			seed := baseSeed + int64(i)
			runLogger := log.New(logOutput, fmt.Sprintf("%s[%s] %s", config.ColorMagenta, id, config.ColorReset), log.LstdFlags)

			gen, err := generator.New(alg, generator.WithSeed(seed), generator.WithLogger(runLogger))
			if err != nil {
				return err
			}

			m, err := gen.Generate(cfg.Height, cfg.Width)
			if err != nil {
				return fmt.Errorf("run %s: %w", id, err)
			}

			runs[i] = run{id: id, seed: seed, maze: m}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// printRun writes the rendered maze of r, preceded by a header line.
func printRun(w io.Writer, r run, alg generator.Algorithm, debug bool) {
	fmt.Fprintf(w, "%s# %s %s seed=%d%s\n", config.ColorBlue, r.id, alg, r.seed, config.ColorReset)
	fmt.Fprint(w, r.maze)
	if debug {
		fmt.Fprint(w, r.maze.Info())
	}
}
