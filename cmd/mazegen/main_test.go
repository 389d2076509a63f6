package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatch(t *testing.T) {
	cfg := config.Config{Height: 5, Width: 6, Count: 4, Workers: 2}

	t.Run("Every run is perfect and seeded in order", func(t *testing.T) {
		var logs bytes.Buffer
		runs, err := generateBatch(cfg, generator.Sidewinder, 100, &logs)
		require.NoError(t, err)
		require.Len(t, runs, 4)

		ids := map[string]bool{}
		for i, r := range runs {
			assert.Equal(t, int64(100+i), r.seed)
			assert.True(t, r.maze.Inspect().Perfect)
			ids[r.id.String()] = true
		}
		assert.Len(t, ids, 4)
		assert.Equal(t, 4, strings.Count(logs.String(), "[GENERATOR] [INFO]"))
	})

	t.Run("Batches are reproducible", func(t *testing.T) {
		first, err := generateBatch(cfg, generator.Wilson, 7, io.Discard)
		require.NoError(t, err)
		second, err := generateBatch(cfg, generator.Wilson, 7, io.Discard)
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].maze.Walls(), second[i].maze.Walls())
		}
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		bad := cfg
		bad.Width = 0
		_, err := generateBatch(bad, generator.Fusion, 1, io.Discard)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})
}

func TestPrintRun(t *testing.T) {
	runs, err := generateBatch(config.Config{Height: 2, Width: 3, Count: 1, Workers: 1}, generator.BinaryTree, 3, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	printRun(&out, runs[0], generator.BinaryTree, true)

	assert.Contains(t, out.String(), runs[0].id.String())
	assert.Contains(t, out.String(), "binary-tree seed=3")
	assert.Contains(t, out.String(), runs[0].maze.String())
	assert.Contains(t, out.String(), "- Perfect: true")
}
