package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// GenerateSidewinder scans each row left to right building runs of cells
// joined eastward. A run is closed at random and one of its cells, picked
// uniformly, is joined to the row below. The last row is a single corridor.
func GenerateSidewinder(height, width int, rng Rand) (*maze.Maze, error) {
	m, err := newWalled(height, width, rng)
	if err != nil {
		return nil, err
	}

	run := make([]maze.Cell, 0, width)
	for i := 0; i < height-1; i++ {
		run = run[:0]
		for j := 0; j < width-1; j++ {
			c := maze.Cell{Row: i, Col: j}
			run = append(run, c)

			if rng.Intn(2) == 0 {
				if err := m.OpenPassage(c, c.Right()); err != nil {
					return nil, err
				}
				continue
			}

			if err := openSouthFromRun(m, run, rng); err != nil {
				return nil, err
			}
			run = run[:0]
		}

		// The last cell always closes the run.
		run = append(run, maze.Cell{Row: i, Col: width - 1})
		if err := openSouthFromRun(m, run, rng); err != nil {
			return nil, err
		}
	}

	for j := 0; j < width-1; j++ {
		c := maze.Cell{Row: height - 1, Col: j}
		if err := m.OpenPassage(c, c.Right()); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// openSouthFromRun joins a uniformly chosen cell of the run to the cell below it.
func openSouthFromRun(m *maze.Maze, run []maze.Cell, rng Rand) error {
	c := run[rng.Intn(len(run))]
	return m.OpenPassage(c, c.Down())
}
