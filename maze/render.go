package maze

import (
	"fmt"
	"strings"
)

// Report summarizes the structure of a maze for debugging.
type Report struct {
	Height     int
	Width      int
	Passages   int
	Consistent bool  // Every passage is recorded on both of its cells
	Offending  *Wall // First asymmetric pair found, nil when consistent
	Connected  bool  // Every cell can be reached from (0,0)
	Perfect    bool  // Connected with exactly Height*Width-1 passages
}

// Inspect walks the maze read-only and reports on its invariants.
func (m *Maze) Inspect() Report {
	r := Report{
		Height:     m.height,
		Width:      m.width,
		Passages:   m.Passages(),
		Consistent: true,
	}

	for _, c1 := range m.Cells() {
		for c2 := range m.neighbors[c1] {
			if _, back := m.neighbors[c2][c1]; !back {
				r.Consistent = false
				r.Offending = &Wall{A: c1, B: c2}
				break
			}
		}
		if !r.Consistent {
			break
		}
	}

	r.Connected = m.countReachable(Cell{}) == m.height*m.width
	r.Perfect = r.Connected && r.Passages == m.height*m.width-1
	return r
}

// countReachable counts the cells reachable from start through open passages.
func (m *Maze) countReachable(start Cell) int {
	seen := map[Cell]struct{}{start: {}}
	stack := []Cell{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for n := range m.neighbors[c] {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}
	return len(seen)
}

// Info returns a human readable description of the maze attributes.
func (m *Maze) Info() string {
	r := m.Inspect()

	var sb strings.Builder
	sb.WriteString("**Maze information**\n")
	fmt.Fprintf(&sb, "- Grid dimensions: %d x %d\n", r.Height, r.Width)
	fmt.Fprintf(&sb, "- Open passages: %d\n", r.Passages)
	if r.Consistent {
		sb.WriteString("- Consistent structure\n")
	} else {
		fmt.Fprintf(&sb, "- Inconsistent structure: %s X %s\n", r.Offending.A, r.Offending.B)
	}
	fmt.Fprintf(&sb, "- Connected: %t\n", r.Connected)
	fmt.Fprintf(&sb, "- Perfect: %t\n", r.Perfect)
	return sb.String()
}

func (m *Maze) open(c1, c2 Cell) bool {
	_, ok := m.neighbors[c1][c2]
	return ok
}

// String draws the maze with box-drawing characters, three columns per cell.
func (m *Maze) String() string {
	var sb strings.Builder

	// Top boundary
	sb.WriteString("┏" + strings.Repeat("━━━┳", m.width-1) + "━━━┓\n")

	// First row of cells
	sb.WriteString("┃")
	for j := 0; j < m.width-1; j++ {
		if m.open(Cell{0, j}, Cell{0, j + 1}) {
			sb.WriteString("    ")
		} else {
			sb.WriteString("   ┃")
		}
	}
	sb.WriteString("   ┃\n")

	for i := 0; i < m.height-1; i++ {
		// Horizontal walls between row i and row i+1
		sb.WriteString("┣")
		for j := 0; j < m.width-1; j++ {
			if m.open(Cell{i, j}, Cell{i + 1, j}) {
				sb.WriteString("   ╋")
			} else {
				sb.WriteString("━━━╋")
			}
		}
		if m.open(Cell{i, m.width - 1}, Cell{i + 1, m.width - 1}) {
			sb.WriteString("   ┫\n")
		} else {
			sb.WriteString("━━━┫\n")
		}

		// Cells of row i+1
		sb.WriteString("┃")
		for j := 0; j < m.width; j++ {
			if j < m.width-1 && m.open(Cell{i + 1, j}, Cell{i + 1, j + 1}) {
				sb.WriteString("    ")
			} else {
				sb.WriteString("   ┃")
			}
		}
		sb.WriteString("\n")
	}

	// Bottom boundary
	sb.WriteString("┗" + strings.Repeat("━━━┻", m.width-1) + "━━━┛\n")

	return sb.String()
}
