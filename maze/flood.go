package maze

import (
	"fmt"
	"math"
)

// Unreachable is the distance of a node the flood fill never reached.
const Unreachable = math.MaxInt

// floodFill returns the corridor distance from (sx,sy) to every node,
// expanding one wavefront level at a time. Outside nodes stay Unreachable;
// a playable node left Unreachable is an invariant violation.
func (m *Maze) floodFill(sx, sy int) ([]int, error) {
	dist := make([]int, len(m.Nodes))
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[m.index(sx, sy)] = 0

	current := []Position{{X: sx, Y: sy}}
	var next []Position
	for level := 1; len(current) > 0; level++ {
		for _, p := range current {
			node := &m.Nodes[m.index(p.X, p.Y)]
			for _, d := range Directions() {
				if !node.Actual.Has(d) {
					continue
				}
				nx, ny, ok := m.Neighbor(p.X, p.Y, d)
				if !ok {
					continue
				}
				ni := m.index(nx, ny)
				if level >= dist[ni] {
					continue
				}
				dist[ni] = level
				next = append(next, Position{X: nx, Y: ny})
			}
		}
		current, next = next, current[:0]
	}

	for i := range m.Nodes {
		if !m.Nodes[i].Outside && dist[i] == Unreachable {
			return nil, fmt.Errorf("%w: node (%d, %d) unreachable from (%d, %d)",
				ErrInvariantViolation, m.Nodes[i].X, m.Nodes[i].Y, sx, sy)
		}
	}
	return dist, nil
}

// Distances returns the corridor distance from (x,y) to every node in
// row-major order. Outside nodes report Unreachable.
func (m *Maze) Distances(x, y int) ([]int, error) {
	if !m.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, m.Width, m.Height)
	}
	return m.floodFill(x, y)
}

// PathLength returns the number of corridor steps from start to finish.
func (m *Maze) PathLength() (int, error) {
	dist, err := m.Distances(m.Start.X, m.Start.Y)
	if err != nil {
		return 0, err
	}
	return dist[m.index(m.Finish.X, m.Finish.Y)], nil
}

// isolatedNode returns the first playable node, in row-major order, that
// cannot be reached from the first playable node through cardinal
// neighbours. The repair pass links nodes only through cardinal
// neighbours, so a region split this way can never be carved into a
// single maze.
func (m *Maze) isolatedNode() (Position, bool) {
	first := -1
	for i := range m.Nodes {
		if !m.Nodes[i].Outside {
			first = i
			break
		}
	}
	if first == -1 {
		return Position{}, false
	}

	seen := make([]bool, len(m.Nodes))
	seen[first] = true
	queue := []Position{{X: m.Nodes[first].X, Y: m.Nodes[first].Y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range repairDirections {
			nx, ny, ok := m.Neighbor(p.X, p.Y, d)
			if !ok {
				continue
			}
			ni := m.index(nx, ny)
			if seen[ni] || m.Nodes[ni].Outside {
				continue
			}
			seen[ni] = true
			queue = append(queue, Position{X: nx, Y: ny})
		}
	}

	for i := range m.Nodes {
		if !m.Nodes[i].Outside && !seen[i] {
			return Position{X: m.Nodes[i].X, Y: m.Nodes[i].Y}, true
		}
	}
	return Position{}, false
}
