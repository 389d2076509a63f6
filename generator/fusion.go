package generator

import "github.com/beka-birhanu/vinom-maze/maze"

// labels tracks the connected component of every cell while fusing.
// Labels start at 1 in row-major order. Classes are kept as a disjoint set
// forest with path compression and union by size.
type labels struct {
	width  int
	parent []int
	size   []int
}

func newLabels(height, width int) *labels {
	n := height * width
	l := &labels{
		width:  width,
		parent: make([]int, n+1),
		size:   make([]int, n+1),
	}
	for label := 1; label <= n; label++ {
		l.parent[label] = label
		l.size[label] = 1
	}
	return l
}

// of returns the label representing the class of c.
func (l *labels) of(c maze.Cell) int {
	label := c.Row*l.width + c.Col + 1
	root := label
	for l.parent[root] != root {
		root = l.parent[root]
	}
	for label != root {
		next := l.parent[label]
		l.parent[label] = root
		label = next
	}
	return root
}

// merge fuses the classes of labels a and b, both roots.
func (l *labels) merge(a, b int) {
	if l.size[a] < l.size[b] {
		a, b = b, a
	}
	l.parent[b] = a
	l.size[a] += l.size[b]
}

// GenerateFusion visits every wall of a fully walled maze in random order
// and opens it when the two cells it separates belong to different classes.
func GenerateFusion(height, width int, rng Rand) (*maze.Maze, error) {
	m, err := newWalled(height, width, rng)
	if err != nil {
		return nil, err
	}

	walls := m.Walls()
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	classes := newLabels(height, width)
	remaining := height*width - 1
	for _, w := range walls {
		if remaining == 0 {
			break
		}

		a, b := classes.of(w.A), classes.of(w.B)
		if a == b {
			continue
		}

		if err := m.OpenPassage(w.A, w.B); err != nil {
			return nil, err
		}
		classes.merge(a, b)
		remaining--
	}

	return m, nil
}
