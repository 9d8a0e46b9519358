/*
Package maze provides a procedural generator for 8-connected grid mazes.

It defines the `Maze` structure, a row-major array of `Node` values that each
carry two edge flag sets: the edges the grid and shape permit, and the
corridors the carver actually opened.

Generation builds the grid (optionally with non-crossing diagonals), masks it
to one of several boundary shapes, optionally adds gates or a coarse nested
maze, then carves corridors with a randomized backtracking walk that reaches
every playable node. Start and finish are picked on the boundary by two
flood fills so that they lie far apart.

Every random choice flows from one seed, so a maze is fully reproducible from
its seed and options.
*/
package maze

import (
	"fmt"
	"strings"
)

// Maze is a generated maze over a Width x Height grid.
type Maze struct {
	Nodes  []Node // Row-major nodes, index y*Width + x
	Width  int    // Number of columns
	Height int    // Number of rows
	Seed   int64  // Seed every random choice was drawn from
	Shape  Shape  // Boundary shape the grid was masked to

	// EdgeNodes lists the first and last playable node of every row and
	// column, in discovery order and without duplicates.
	EdgeNodes []Position

	Start  Position
	Finish Position

	edgeIndex map[Position]struct{}
}

func newMaze(seed int64, shape Shape, width, height int) *Maze {
	m := &Maze{
		Nodes:     make([]Node, width*height),
		Width:     width,
		Height:    height,
		Seed:      seed,
		Shape:     shape,
		edgeIndex: make(map[Position]struct{}),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Nodes[y*width+x] = Node{X: x, Y: y}
		}
	}
	return m
}

func (m *Maze) index(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether (x,y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Node returns the node at (x,y), or nil when the coordinates are out of range.
func (m *Maze) Node(x, y int) *Node {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Nodes[m.index(x, y)]
}

// Neighbor returns the coordinates one step from (x,y) in d and whether
// they are inside the grid.
func (m *Maze) Neighbor(x, y int, d Direction) (int, int, bool) {
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	return nx, ny, m.InBounds(nx, ny)
}

// PlayableCount returns the number of nodes that are not outside the maze.
func (m *Maze) PlayableCount() int {
	n := 0
	for i := range m.Nodes {
		if !m.Nodes[i].Outside {
			n++
		}
	}
	return n
}

// IsEdgeNode reports whether (x,y) is a start/finish candidate.
func (m *Maze) IsEdgeNode(x, y int) bool {
	_, ok := m.edgeIndex[Position{X: x, Y: y}]
	return ok
}

func (m *Maze) addEdgeNode(p Position) {
	if _, ok := m.edgeIndex[p]; ok {
		return
	}
	m.edgeIndex[p] = struct{}{}
	m.EdgeNodes = append(m.EdgeNodes, p)
}

// detectEdgeNodes records the first and last playable node scanned along
// each row, then along each column.
func (m *Maze) detectEdgeNodes() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.Nodes[m.index(x, y)].Outside {
				m.addEdgeNode(Position{X: x, Y: y})
				break
			}
		}
		for x := m.Width - 1; x >= 0; x-- {
			if !m.Nodes[m.index(x, y)].Outside {
				m.addEdgeNode(Position{X: x, Y: y})
				break
			}
		}
	}
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if !m.Nodes[m.index(x, y)].Outside {
				m.addEdgeNode(Position{X: x, Y: y})
				break
			}
		}
		for y := m.Height - 1; y >= 0; y-- {
			if !m.Nodes[m.index(x, y)].Outside {
				m.addEdgeNode(Position{X: x, Y: y})
				break
			}
		}
	}
}

// glyph returns the character drawn for the node at (x,y).
func (m *Maze) glyph(x, y int) byte {
	switch {
	case m.Start.X == x && m.Start.Y == y:
		return 'S'
	case m.Finish.X == x && m.Finish.Y == y:
		return 'F'
	case m.Nodes[m.index(x, y)].Outside:
		return ' '
	default:
		return 'o'
	}
}

// String provides a textual drawing of the maze. Nodes sit on even columns
// and rows; the characters between them show the corridors.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((2*m.Width + 1) * (2*m.Height + 1))

	for y := 0; y < m.Height; y++ {
		// Node row
		for x := 0; x < m.Width; x++ {
			b.WriteByte(m.glyph(x, y))
			if x < m.Width-1 {
				if m.Nodes[m.index(x, y)].Actual.Has(Right) {
					b.WriteByte('-')
				} else {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
		if y == m.Height-1 {
			break
		}

		// Link row
		for x := 0; x < m.Width; x++ {
			node := &m.Nodes[m.index(x, y)]
			if node.Actual.Has(Down) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			if x == m.Width-1 {
				continue
			}
			switch {
			case node.Actual.Has(RightDown):
				b.WriteByte('\\')
			case m.Nodes[m.index(x+1, y)].Actual.Has(DownLeft):
				b.WriteByte('/')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot is a flat, serialisable copy of a finished maze.
type Snapshot struct {
	Width     int        `json:"width" bson:"width"`
	Height    int        `json:"height" bson:"height"`
	Seed      int64      `json:"seed" bson:"seed"`
	Shape     Shape      `json:"shape" bson:"shape"`
	Start     Position   `json:"start" bson:"start"`
	Finish    Position   `json:"finish" bson:"finish"`
	EdgeNodes []Position `json:"edge_nodes" bson:"edgeNodes"`
	Outside   []bool     `json:"outside" bson:"outside"`
	Possible  []byte     `json:"possible" bson:"possible"`
	Actual    []byte     `json:"actual" bson:"actual"`
}

// Snapshot copies the maze into its serialisable form.
func (m *Maze) Snapshot() Snapshot {
	s := Snapshot{
		Width:     m.Width,
		Height:    m.Height,
		Seed:      m.Seed,
		Shape:     m.Shape,
		Start:     m.Start,
		Finish:    m.Finish,
		EdgeNodes: append([]Position(nil), m.EdgeNodes...),
		Outside:   make([]bool, len(m.Nodes)),
		Possible:  make([]byte, len(m.Nodes)),
		Actual:    make([]byte, len(m.Nodes)),
	}
	for i := range m.Nodes {
		s.Outside[i] = m.Nodes[i].Outside
		s.Possible[i] = byte(m.Nodes[i].Possible)
		s.Actual[i] = byte(m.Nodes[i].Actual)
	}
	return s
}

// FromSnapshot rebuilds a maze from its serialisable form.
func FromSnapshot(s Snapshot) (*Maze, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: snapshot is %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	n := s.Width * s.Height
	if len(s.Outside) != n || len(s.Possible) != n || len(s.Actual) != n {
		return nil, fmt.Errorf("%w: snapshot holds %d/%d/%d nodes, want %d",
			ErrInvalidDimensions, len(s.Outside), len(s.Possible), len(s.Actual), n)
	}

	m := newMaze(s.Seed, s.Shape, s.Width, s.Height)
	for i := range m.Nodes {
		m.Nodes[i].Outside = s.Outside[i]
		m.Nodes[i].Possible = DirectionSet(s.Possible[i])
		m.Nodes[i].Actual = DirectionSet(s.Actual[i])
	}
	for _, p := range s.EdgeNodes {
		if !m.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: edge node (%d, %d)", ErrOutOfBounds, p.X, p.Y)
		}
		m.addEdgeNode(p)
	}
	if !m.InBounds(s.Start.X, s.Start.Y) || !m.InBounds(s.Finish.X, s.Finish.Y) {
		return nil, fmt.Errorf("%w: terminals (%d, %d) and (%d, %d)",
			ErrOutOfBounds, s.Start.X, s.Start.Y, s.Finish.X, s.Finish.Y)
	}
	m.Start = s.Start
	m.Finish = s.Finish
	return m, nil
}
