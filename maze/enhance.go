package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Enhancer names an optional post-processing step that makes a maze harder.
type Enhancer string

const (
	NoEnhancer     Enhancer = "None"
	MazeGates      Enhancer = "Maze Gates"
	MazeWithinMaze Enhancer = "Maze Within Maze"
)

var enhancers = []Enhancer{NoEnhancer, MazeGates, MazeWithinMaze}

// Enhancers returns the built-in difficulty enhancers.
func Enhancers() []Enhancer {
	return append([]Enhancer(nil), enhancers...)
}

// ParseEnhancer resolves an enhancer name, ignoring case. An empty name
// means NoEnhancer.
func ParseEnhancer(name string) (Enhancer, error) {
	if name == "" {
		return NoEnhancer, nil
	}
	for _, e := range enhancers {
		if strings.EqualFold(string(e), name) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnhancer, name)
}

const (
	nestedScale = 8 // Fine cells per coarse cell side

	gateMinSpacing    = 6 // Minimum rows between gate rows
	gateSpacingSpread = 8 // Random extra rows between gate rows
	gateEdgeMargin    = 5 // Rows kept gate-free above the bottom edge
	gateHoleRadius    = 2 // Cells either side of the hole left open
	gateMinRowCells   = 3 // Playable cells a row needs to get a gate

	pyramidGateDepth = 4 // Rows into the shape before the column is cut
)

// addGates cuts choke points into the working edge set.
func (m *Maze) addGates(rng *rand.Rand) {
	switch m.Shape {
	case Rectangle, Cross:
		m.addRowGates(rng)
	case Pyramid:
		m.addPyramidGate()
	}
}

// addRowGates walks down the rows at random intervals and, on each chosen
// row, cuts every cell off from the row above except a short run around a
// random hole.
func (m *Maze) addRowGates(rng *rand.Rand) {
	for y := rng.Intn(gateSpacingSpread) + gateMinSpacing; y < m.Height-gateEdgeMargin; y += rng.Intn(gateSpacingSpread) + gateMinSpacing {
		first, inside := -1, 0
		for x := 0; x < m.Width; x++ {
			if m.Nodes[m.index(x, y)].Outside {
				continue
			}
			if first == -1 {
				first = x
			}
			inside++
		}
		if inside < gateMinRowCells {
			continue
		}

		hole := rng.Intn(inside-2) + first + 1
		for x := 0; x < m.Width; x++ {
			if abs(x-hole) > gateHoleRadius {
				m.removeNode(x, y, horizontalGate)
			}
		}
	}
}

// addPyramidGate removes the column left of the apex once it is more than
// pyramidGateDepth playable rows deep, splitting the pyramid below its tip.
func (m *Maze) addPyramidGate() {
	x := m.Width/2 - 1
	depth := 0
	for y := 0; y < m.Height; y++ {
		if depth > pyramidGateDepth {
			m.removeNode(x, y, fullRemoval)
			continue
		}
		if !m.Nodes[m.index(x, y)].Outside {
			depth++
		}
	}
}

// stitchNested generates a coarse maze at 1/nestedScale size and copies its
// walls onto the fine grid as gate cuts. Fine cells beyond the coarse
// footprint are removed.
func (m *Maze) stitchNested(rng *rand.Rand) error {
	coarse, err := build(Options{
		Width:    m.Width / nestedScale,
		Height:   m.Height / nestedScale,
		Shape:    Rectangle,
		Enhancer: NoEnhancer,
		Style:    Normal,
	}, rng.Int63(), true)
	if err != nil {
		return fmt.Errorf("nested maze: %w", err)
	}

	for cy := 0; cy < coarse.Height; cy++ {
		for cx := 0; cx < coarse.Width; cx++ {
			cell := &coarse.Nodes[coarse.index(cx, cy)]
			if !cell.Actual.Has(Down) {
				m.cutBelow(cx, cy)
			}
			if !cell.Actual.Has(Right) {
				m.cutRightOf(cx, cy)
			}
		}
	}

	footprintW, footprintH := coarse.Width*nestedScale, coarse.Height*nestedScale
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if x >= footprintW || y >= footprintH {
				m.removeNode(x, y, fullRemoval)
			}
		}
	}
	return nil
}

// cutBelow separates coarse cell (cx,cy) from the one below it, clearing
// the diagonal at each end of the strip as well.
func (m *Maze) cutBelow(cx, cy int) {
	y := (cy + 1) * nestedScale
	if y >= m.Height {
		return
	}
	x0 := cx * nestedScale
	if x0 > 0 {
		m.connect(x0-1, y, UpRight, false)
	}
	for x := x0; x < x0+nestedScale; x++ {
		m.removeNode(x, y, horizontalGate)
	}
	if x := x0 + nestedScale; x < m.Width {
		m.connect(x, y, UpLeft, false)
	}
}

// cutRightOf separates coarse cell (cx,cy) from the one to its right,
// clearing the diagonal at each end of the strip as well.
func (m *Maze) cutRightOf(cx, cy int) {
	x := (cx+1)*nestedScale - 1
	if x+1 >= m.Width {
		return
	}
	y0 := cy * nestedScale
	if y0 > 0 {
		m.connect(x, y0-1, RightDown, false)
	}
	for y := y0; y < y0+nestedScale; y++ {
		m.removeNode(x, y, verticalGate)
	}
	if y := y0 + nestedScale; y < m.Height {
		m.connect(x, y, UpRight, false)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
