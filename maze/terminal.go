package maze

// selectTerminals places finish at the edge node farthest from the
// provisional start, then moves start to the edge node farthest from that
// finish.
func (m *Maze) selectTerminals() error {
	dist, err := m.floodFill(m.Start.X, m.Start.Y)
	if err != nil {
		return err
	}
	m.Finish = m.farthestEdgeNode(dist, m.Start)

	dist, err = m.floodFill(m.Finish.X, m.Finish.Y)
	if err != nil {
		return err
	}
	m.Start = m.farthestEdgeNode(dist, m.Start)
	return nil
}

// farthestEdgeNode returns the first edge node holding the largest
// distance, or fallback when no edge node is farther than zero.
func (m *Maze) farthestEdgeNode(dist []int, fallback Position) Position {
	best, farthest := fallback, 0
	for _, p := range m.EdgeNodes {
		if d := dist[m.index(p.X, p.Y)]; d != Unreachable && d > farthest {
			farthest = d
			best = p
		}
	}
	return best
}
