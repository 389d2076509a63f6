/*
Package generator carves perfect mazes out of fully walled maze.Maze grids.

Five algorithms are available, each with its own bias:

  - binary tree: long corridors along the bottom row and right column
  - sidewinder: long horizontal runs joined downward at random points
  - fusion: randomized Kruskal, uniform looking branching
  - exploration: randomized depth first search, long winding corridors
  - wilson: loop-erased random walks, a uniform spanning tree

Randomness is always injected through a Rand so that a fixed seed yields a
fixed maze.
*/
package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Generator errors.
var (
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
	ErrNilRand          = errors.New("random source is nil")
)

// Rand is the source of randomness consumed by the algorithms.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

var _ Rand = (*rand.Rand)(nil)

// Algorithm names a maze construction algorithm.
type Algorithm string

// Supported algorithms.
const (
	BinaryTree  Algorithm = "binary-tree"
	Sidewinder  Algorithm = "sidewinder"
	Fusion      Algorithm = "fusion"
	Exploration Algorithm = "exploration"
	Wilson      Algorithm = "wilson"
)

// GenerateFunc builds a perfect maze of the given dimensions.
type GenerateFunc func(height, width int, rng Rand) (*maze.Maze, error)

var algorithms = map[Algorithm]GenerateFunc{
	BinaryTree:  GenerateBinaryTree,
	Sidewinder:  GenerateSidewinder,
	Fusion:      GenerateFusion,
	Exploration: GenerateExploration,
	Wilson:      GenerateWilson,
}

// Algorithms returns the supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BinaryTree, Sidewinder, Fusion, Exploration, Wilson}
}

// ParseAlgorithm resolves an algorithm name, ignoring case and surrounding spaces.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := algorithms[alg]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Generate builds a maze with the given algorithm.
func Generate(alg Algorithm, height, width int, rng Rand) (*maze.Maze, error) {
	generate, ok := algorithms[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	return generate(height, width, rng)
}

// newWalled validates the inputs shared by every algorithm and returns a fully walled maze.
func newWalled(height, width int, rng Rand) (*maze.Maze, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	return maze.New(height, width)
}

// Generator produces mazes of a fixed algorithm from its own random source.
type Generator struct {
	algorithm Algorithm   // Algorithm used for every maze
	rng       Rand        // Random source, owned by the generator
	logger    *log.Logger // Logger
}

// Option configures a Generator.
type Option func(*Generator)

// New creates a Generator for alg. Without WithRand or WithSeed the generator
// is seeded from the current time.
func New(alg Algorithm, options ...Option) (*Generator, error) {
	if _, ok := algorithms[alg]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	g := &Generator{algorithm: alg}
	for _, opt := range options {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if g.logger == nil {
		// Discard logging if no logger is set
		g.logger = log.New(io.Discard, "", 0)
	}

	return g, nil
}

// Algorithm returns the algorithm used by the generator.
func (g *Generator) Algorithm() Algorithm {
	return g.algorithm
}

// Generate builds a new maze. A Generator is not safe for concurrent use.
func (g *Generator) Generate(height, width int) (*maze.Maze, error) {
	start := time.Now()
	m, err := Generate(g.algorithm, height, width, g.rng)
	if err != nil {
		g.logger.Printf("[GENERATOR] [ERROR] %s %dx%d: %v", g.algorithm, height, width, err)
		return nil, err
	}

	g.logger.Printf("[GENERATOR] [INFO] %s %dx%d carved %d passages in %v", g.algorithm, height, width, m.Passages(), time.Since(start))
	return m, nil
}

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed seeds a new math/rand source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}
