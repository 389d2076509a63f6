package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// GenerateExploration carves the maze with a randomized depth first search
// starting from a uniformly chosen cell.
func GenerateExploration(height, width int, rng Rand) (*maze.Maze, error) {
	m, err := newWalled(height, width, rng)
	if err != nil {
		return nil, err
	}

	start := maze.Cell{Row: rng.Intn(height), Col: rng.Intn(width)}
	if err := explore(m, start, rng); err != nil {
		return nil, err
	}
	return m, nil
}

// explore opens passages from start until every cell reachable on the grid
// has been visited and backtracked from.
func explore(m *maze.Maze, start maze.Cell, rng Rand) error {
	visited := map[maze.Cell]struct{}{start: {}}
	stack := []maze.Cell{start}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		contiguous, err := m.Contiguous(top)
		if err != nil {
			return err
		}

		unvisited := contiguous[:0]
		for _, n := range contiguous {
			if _, seen := visited[n]; !seen {
				unvisited = append(unvisited, n)
			}
		}

		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(len(unvisited))]
		if err := m.OpenPassage(top, next); err != nil {
			return err
		}
		visited[next] = struct{}{}
		stack = append(stack, next)
	}

	return nil
}
