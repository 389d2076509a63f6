package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Fully walled", func(t *testing.T) {
		m, err := New(3, 4)
		require.NoError(t, err)

		assert.Equal(t, 3, m.Height())
		assert.Equal(t, 4, m.Width())
		assert.Equal(t, 0, m.Passages())
		// 3 rows of 3 vertical walls and 2 rows of 4 horizontal walls
		assert.Len(t, m.Walls(), 3*3+2*4)
		for _, c := range m.Cells() {
			reachable, err := m.Reachable(c)
			require.NoError(t, err)
			assert.Empty(t, reachable)
		}
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
			m, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, m)
		}
	})
}

func TestCells(t *testing.T) {
	m, err := New(2, 3)
	require.NoError(t, err)

	expected := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, expected, m.Cells())
	// Restartable
	assert.Equal(t, expected, m.Cells())
}

func TestContiguous(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cell     Cell
		expected []Cell
	}{
		{"Center", Cell{1, 1}, []Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}},
		{"Top left corner", Cell{0, 0}, []Cell{{1, 0}, {0, 1}}},
		{"Bottom right corner", Cell{2, 2}, []Cell{{1, 2}, {2, 1}}},
		{"Right edge", Cell{1, 2}, []Cell{{0, 2}, {2, 2}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contiguous, err := m.Contiguous(tt.cell)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, contiguous)
		})
	}

	t.Run("Single cell grid", func(t *testing.T) {
		single, err := New(1, 1)
		require.NoError(t, err)
		contiguous, err := single.Contiguous(Cell{0, 0})
		require.NoError(t, err)
		assert.Empty(t, contiguous)
	})
}

func TestOpenPassageAndAddWall(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.OpenPassage(Cell{0, 0}, Cell{0, 1}))

	reachable, err := m.Reachable(Cell{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 1}}, reachable)

	reachable, err = m.Reachable(Cell{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 0}}, reachable)

	open, err := m.HasPassage(Cell{0, 1}, Cell{0, 0})
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, m.AddWall(Cell{0, 1}, Cell{0, 0}))
	open, err = m.HasPassage(Cell{0, 0}, Cell{0, 1})
	require.NoError(t, err)
	assert.False(t, open)
	assert.Equal(t, 0, m.Passages())
}

func TestIdempotence(t *testing.T) {
	once, err := New(2, 3)
	require.NoError(t, err)
	twice, err := New(2, 3)
	require.NoError(t, err)

	require.NoError(t, once.OpenPassage(Cell{1, 1}, Cell{1, 2}))
	require.NoError(t, twice.OpenPassage(Cell{1, 1}, Cell{1, 2}))
	require.NoError(t, twice.OpenPassage(Cell{1, 2}, Cell{1, 1}))
	assert.Equal(t, once, twice)
	assert.Equal(t, 1, twice.Passages())

	require.NoError(t, once.AddWall(Cell{1, 1}, Cell{1, 2}))
	require.NoError(t, twice.AddWall(Cell{1, 1}, Cell{1, 2}))
	require.NoError(t, twice.AddWall(Cell{1, 1}, Cell{1, 2}))
	assert.Equal(t, once, twice)
	assert.Equal(t, 0, twice.Passages())
}

func TestBoundsEnforcement(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	outside := []Cell{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range outside {
		t.Run(c.String(), func(t *testing.T) {
			assert.ErrorIs(t, m.OpenPassage(Cell{0, 0}, c), ErrOutOfBounds)
			assert.ErrorIs(t, m.OpenPassage(c, Cell{0, 0}), ErrOutOfBounds)
			assert.ErrorIs(t, m.AddWall(Cell{1, 1}, c), ErrOutOfBounds)

			_, err := m.Contiguous(c)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			_, err = m.Reachable(c)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			_, err = m.HasPassage(c, Cell{0, 0})
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestOpenPassageNotAdjacent(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, m.OpenPassage(Cell{0, 0}, Cell{1, 1}), ErrNotAdjacent)
	assert.ErrorIs(t, m.OpenPassage(Cell{0, 0}, Cell{0, 2}), ErrNotAdjacent)
	assert.ErrorIs(t, m.OpenPassage(Cell{1, 1}, Cell{1, 1}), ErrNotAdjacent)
	assert.Equal(t, 0, m.Passages())
}

func TestOpenAllAndFill(t *testing.T) {
	m, err := New(3, 4)
	require.NoError(t, err)

	m.OpenAll()
	assert.Empty(t, m.Walls())
	// Horizontal pairs plus vertical pairs
	assert.Equal(t, 3*3+2*4, m.Passages())

	reachable, err := m.Reachable(Cell{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []Cell{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, reachable)

	m.Fill()
	assert.Equal(t, 0, m.Passages())
	assert.Len(t, m.Walls(), 3*3+2*4)
}

func TestWalls(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	assert.Equal(t, []Wall{
		{Cell{0, 0}, Cell{0, 1}},
		{Cell{0, 0}, Cell{1, 0}},
		{Cell{0, 1}, Cell{1, 1}},
		{Cell{1, 0}, Cell{1, 1}},
	}, m.Walls())

	require.NoError(t, m.OpenPassage(Cell{1, 1}, Cell{0, 1}))
	assert.Equal(t, []Wall{
		{Cell{0, 0}, Cell{0, 1}},
		{Cell{0, 0}, Cell{1, 0}},
		{Cell{1, 0}, Cell{1, 1}},
	}, m.Walls())
}

func TestWallsAndReachableAreComplementary(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.OpenPassage(Cell{0, 0}, Cell{0, 1}))
	require.NoError(t, m.OpenPassage(Cell{1, 1}, Cell{2, 1}))
	require.NoError(t, m.OpenPassage(Cell{2, 2}, Cell{1, 2}))

	closed := map[Wall]bool{}
	for _, w := range m.Walls() {
		closed[w] = true
	}

	for _, c := range m.Cells() {
		reachable, err := m.Reachable(c)
		require.NoError(t, err)
		open := map[Cell]bool{}
		for _, n := range reachable {
			open[n] = true
		}

		for _, n := range []Cell{c.Right(), c.Down()} {
			if !m.InBound(n) {
				continue
			}
			assert.NotEqual(t, open[n], closed[Wall{c, n}], "pair %s %s", c, n)
		}
	}
}

func TestInspect(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	r := m.Inspect()
	assert.True(t, r.Consistent)
	assert.False(t, r.Connected)
	assert.False(t, r.Perfect)

	require.NoError(t, m.OpenPassage(Cell{0, 0}, Cell{0, 1}))
	require.NoError(t, m.OpenPassage(Cell{0, 1}, Cell{1, 1}))
	require.NoError(t, m.OpenPassage(Cell{1, 1}, Cell{1, 0}))
	r = m.Inspect()
	assert.True(t, r.Consistent)
	assert.True(t, r.Connected)
	assert.True(t, r.Perfect)
	assert.Equal(t, 3, r.Passages)
	assert.Contains(t, m.Info(), "- Consistent structure")

	require.NoError(t, m.OpenPassage(Cell{0, 0}, Cell{1, 0}))
	r = m.Inspect()
	assert.True(t, r.Connected)
	assert.False(t, r.Perfect)

	// Break symmetry behind the API.
	delete(m.neighbors[Cell{1, 0}], Cell{0, 0})
	r = m.Inspect()
	assert.False(t, r.Consistent)
	require.NotNil(t, r.Offending)
	assert.Contains(t, m.Info(), "Inconsistent structure")
}

func TestString(t *testing.T) {
	t.Run("Walled 1x2", func(t *testing.T) {
		m, err := New(1, 2)
		require.NoError(t, err)
		assert.Equal(t, "┏━━━┳━━━┓\n┃   ┃   ┃\n┗━━━┻━━━┛\n", m.String())
	})

	t.Run("Open 2x2", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		m.OpenAll()
		expected := "" +
			"┏━━━┳━━━┓\n" +
			"┃       ┃\n" +
			"┣   ╋   ┫\n" +
			"┃       ┃\n" +
			"┗━━━┻━━━┛\n"
		assert.Equal(t, expected, m.String())
	})

	t.Run("Partially open 2x2", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)
		require.NoError(t, m.OpenPassage(Cell{0, 0}, Cell{0, 1}))
		require.NoError(t, m.OpenPassage(Cell{0, 1}, Cell{1, 1}))
		expected := "" +
			"┏━━━┳━━━┓\n" +
			"┃       ┃\n" +
			"┣━━━╋   ┫\n" +
			"┃   ┃   ┃\n" +
			"┗━━━┻━━━┛\n"
		assert.Equal(t, expected, m.String())
	})
}
