package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// GenerateWilson builds a uniform spanning tree with Wilson's algorithm:
// random walks from unvisited cells are loop-erased and grafted onto the
// visited part of the maze as soon as they touch it.
func GenerateWilson(height, width int, rng Rand) (*maze.Maze, error) {
	m, err := newWalled(height, width, rng)
	if err != nil {
		return nil, err
	}

	visited := make(map[maze.Cell]struct{}, height*width)
	visited[randomCell(m, rng)] = struct{}{}

	for len(visited) < height*width {
		start := randomUnvisitedCell(m, visited, rng)
		exits, err := randomWalk(m, start, visited, rng)
		if err != nil {
			return nil, err
		}

		// Follow the last exit of every cell, skipping erased loops.
		for cell := start; ; {
			if _, done := visited[cell]; done {
				break
			}
			next := exits[cell]
			if err := m.OpenPassage(cell, next); err != nil {
				return nil, err
			}
			visited[cell] = struct{}{}
			cell = next
		}
	}

	return m, nil
}

// randomCell picks a uniformly random cell of the maze.
func randomCell(m *maze.Maze, rng Rand) maze.Cell {
	return maze.Cell{Row: rng.Intn(m.Height()), Col: rng.Intn(m.Width())}
}

// randomUnvisitedCell picks a random cell that has not been visited.
func randomUnvisitedCell(m *maze.Maze, visited map[maze.Cell]struct{}, rng Rand) maze.Cell {
	for {
		c := randomCell(m, rng)
		if _, included := visited[c]; !included {
			return c
		}
	}
}

// randomWalk wanders from start until it steps on a visited cell and returns
// the last exit taken from every cell on the way.
func randomWalk(m *maze.Maze, start maze.Cell, visited map[maze.Cell]struct{}, rng Rand) (map[maze.Cell]maze.Cell, error) {
	exits := make(map[maze.Cell]maze.Cell)
	cell := start

	for {
		contiguous, err := m.Contiguous(cell)
		if err != nil {
			return nil, err
		}
		next := contiguous[rng.Intn(len(contiguous))]
		exits[cell] = next
		if _, included := visited[next]; included {
			return exits, nil
		}
		cell = next
	}
}
