package maze

import "fmt"

// Cell represents the position of a cell in the maze grid.
type Cell struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Up returns the cell directly above c. The result may lie outside the grid.
func (c Cell) Up() Cell {
	return Cell{Row: c.Row - 1, Col: c.Col}
}

// Down returns the cell directly below c.
func (c Cell) Down() Cell {
	return Cell{Row: c.Row + 1, Col: c.Col}
}

// Left returns the cell directly left of c.
func (c Cell) Left() Cell {
	return Cell{Row: c.Row, Col: c.Col - 1}
}

// Right returns the cell directly right of c.
func (c Cell) Right() Cell {
	return Cell{Row: c.Row, Col: c.Col + 1}
}

// IsAdjacent reports whether c and other differ by exactly one in exactly one coordinate.
func (c Cell) IsAdjacent(other Cell) bool {
	dr, dc := abs(c.Row-other.Row), abs(c.Col-other.Col)
	return dr+dc == 1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Wall is a closed boundary between two grid-adjacent cells.
// Walls produced by Maze.Walls always have B as the right or lower neighbor of A.
type Wall struct {
	A Cell
	B Cell
}

func (w Wall) String() string {
	return fmt.Sprintf("%s|%s", w.A, w.B)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
