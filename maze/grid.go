package maze

import "math/rand"

// connect sets or clears the edge between (x,y) and its neighbour in d.
// Both endpoints are updated together so an edge never dangles. The caller
// guarantees that both endpoints are inside the grid.
func (m *Maze) connect(x, y int, d Direction, enabled bool) {
	dx, dy := d.Offset()
	from := &m.Nodes[m.index(x, y)]
	to := &m.Nodes[m.index(x+dx, y+dy)]
	from.Actual = from.Actual.With(d, enabled)
	to.Actual = to.Actual.With(d.Opposite(), enabled)
}

// HasAnyConnection reports whether any corridor leaves (x,y).
func (m *Maze) HasAnyConnection(x, y int) bool {
	return m.Nodes[m.index(x, y)].HasAnyConnection()
}

// buildGrid links every node to its right and lower neighbours. With
// diagonals, each 2x2 block gets exactly one of its two crossing diagonals:
// a coin flip per column picks right-down, otherwise the next column's
// down-left is linked instead.
func (m *Maze) buildGrid(rng *rand.Rand, diagonals bool) {
	connectDiagonal := false
	var diagonalDown []bool
	if diagonals {
		diagonalDown = make([]bool, m.Width)
	}

	for y := 0; y < m.Height; y++ {
		if diagonals {
			for i := range diagonalDown {
				diagonalDown[i] = rng.Float64() < 0.5
			}
		}
		for x := 0; x < m.Width; x++ {
			if x < m.Width-1 {
				m.connect(x, y, Right, true)
			}
			if y < m.Height-1 {
				m.connect(x, y, Down, true)
			}
			if !diagonals {
				continue
			}

			if connectDiagonal {
				if x > 0 && y < m.Height-1 {
					m.connect(x, y, DownLeft, true)
				}
				connectDiagonal = false
			}
			if diagonalDown[x] {
				if x < m.Width-1 && y < m.Height-1 {
					m.connect(x, y, RightDown, true)
				}
			} else {
				connectDiagonal = true
			}
		}
	}
}

// promotePossible hands the working edge set over to Possible and leaves
// Actual empty for the path carver.
func (m *Maze) promotePossible() {
	for i := range m.Nodes {
		m.Nodes[i].Possible = m.Nodes[i].Actual
		m.Nodes[i].Actual = 0
	}
}
