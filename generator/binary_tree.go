package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// GenerateBinaryTree opens, for every cell, either its east or its south
// passage. Cells on the last row can only go east and cells on the last
// column can only go south.
func GenerateBinaryTree(height, width int, rng Rand) (*maze.Maze, error) {
	m, err := newWalled(height, width, rng)
	if err != nil {
		return nil, err
	}

	for _, c := range m.Cells() {
		hasEast := c.Col < width-1
		hasSouth := c.Row < height-1

		var next maze.Cell
		switch {
		case hasEast && hasSouth:
			if rng.Intn(2) == 0 {
				next = c.Right()
			} else {
				next = c.Down()
			}
		case hasEast:
			next = c.Right()
		case hasSouth:
			next = c.Down()
		default:
			continue
		}

		if err := m.OpenPassage(c, next); err != nil {
			return nil, err
		}
	}

	return m, nil
}
