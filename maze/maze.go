/*
Package maze provides a rectangular grid maze modeled as an undirected graph.

Each cell of the grid is a vertex and every open passage between two
grid-adjacent cells is an edge. Walls are never stored: they are the adjacent
pairs that have no passage. A new Maze starts fully walled and is carved by
opening passages.

The package also offers a box-drawing text rendering of the maze and a
read-only consistency report for debugging.
*/
package maze

import (
	"errors"
	"fmt"
)

// Maze errors.
var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

// Maze is a height x width grid whose structure is stored as the set of
// open neighbors of every cell. The relation is kept symmetric.
type Maze struct {
	height    int                        // Number of rows
	width     int                        // Number of columns
	neighbors map[Cell]map[Cell]struct{} // Open neighbors of every cell
}

// New creates a fully walled maze of the given dimensions.
func New(height, width int) (*Maze, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}

	m := &Maze{
		height:    height,
		width:     width,
		neighbors: make(map[Cell]map[Cell]struct{}, height*width),
	}
	m.Fill()
	return m, nil
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// InBound reports whether c lies inside the grid.
func (m *Maze) InBound(c Cell) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

func (m *Maze) checkBounds(cells ...Cell) error {
	for _, c := range cells {
		if !m.InBound(c) {
			return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, m.height, m.width)
		}
	}
	return nil
}

// Cells returns every cell of the grid in row-major order.
func (m *Maze) Cells() []Cell {
	cells := make([]Cell, 0, m.height*m.width)
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			cells = append(cells, Cell{Row: i, Col: j})
		}
	}
	return cells
}

// Contiguous returns the in-bound cells adjacent to c, ordered up, down, left, right.
func (m *Maze) Contiguous(c Cell) ([]Cell, error) {
	if err := m.checkBounds(c); err != nil {
		return nil, err
	}

	contiguous := make([]Cell, 0, 4)
	for _, n := range [...]Cell{c.Up(), c.Down(), c.Left(), c.Right()} {
		if m.InBound(n) {
			contiguous = append(contiguous, n)
		}
	}
	return contiguous, nil
}

// Reachable returns the cells contiguous to c that are connected to it by an
// open passage, in the same order as Contiguous.
func (m *Maze) Reachable(c Cell) ([]Cell, error) {
	contiguous, err := m.Contiguous(c)
	if err != nil {
		return nil, err
	}

	reachable := make([]Cell, 0, len(contiguous))
	for _, n := range contiguous {
		if _, open := m.neighbors[c][n]; open {
			reachable = append(reachable, n)
		}
	}
	return reachable, nil
}

// HasPassage reports whether a passage is open between c1 and c2.
func (m *Maze) HasPassage(c1, c2 Cell) (bool, error) {
	if err := m.checkBounds(c1, c2); err != nil {
		return false, err
	}
	_, open := m.neighbors[c1][c2]
	return open, nil
}

// OpenPassage removes the wall between c1 and c2. Opening an already open
// passage is a no-op.
func (m *Maze) OpenPassage(c1, c2 Cell) error {
	if err := m.checkBounds(c1, c2); err != nil {
		return err
	}
	if !c1.IsAdjacent(c2) {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, c1, c2)
	}

	m.neighbors[c1][c2] = struct{}{}
	m.neighbors[c2][c1] = struct{}{}
	return nil
}

// AddWall closes the passage between c1 and c2. Adding an existing wall is a no-op.
func (m *Maze) AddWall(c1, c2 Cell) error {
	if err := m.checkBounds(c1, c2); err != nil {
		return err
	}

	delete(m.neighbors[c1], c2)
	delete(m.neighbors[c2], c1)
	return nil
}

// Fill closes every passage of the maze.
func (m *Maze) Fill() {
	for _, c := range m.Cells() {
		m.neighbors[c] = make(map[Cell]struct{}, 4)
	}
}

// OpenAll opens a passage between every pair of adjacent cells.
func (m *Maze) OpenAll() {
	for _, c := range m.Cells() {
		// Sweeping right and down covers each pair once.
		if c.Col+1 < m.width {
			_ = m.OpenPassage(c, c.Right())
		}
		if c.Row+1 < m.height {
			_ = m.OpenPassage(c, c.Down())
		}
	}
}

// Walls returns every closed pair of adjacent cells exactly once, in row-major
// order of A. B is always the right or lower neighbor of A.
func (m *Maze) Walls() []Wall {
	var walls []Wall
	for _, c := range m.Cells() {
		for _, n := range [...]Cell{c.Right(), c.Down()} {
			if !m.InBound(n) {
				continue
			}
			if _, open := m.neighbors[c][n]; !open {
				walls = append(walls, Wall{A: c, B: n})
			}
		}
	}
	return walls
}

// Passages returns the number of open passages, each counted once.
func (m *Maze) Passages() int {
	total := 0
	for _, set := range m.neighbors {
		total += len(set)
	}
	return total / 2
}
