package maze

import (
	"fmt"
	"math"
	"strings"
)

// Shape names the boundary a maze is masked to.
type Shape string

const (
	Rectangle Shape = "Rectangle"
	Pyramid   Shape = "Pyramid"
	Diamond   Shape = "Diamond"
	Cross     Shape = "Cross"
	U         Shape = "U"
	Lemon     Shape = "Lemon"
)

var shapes = []Shape{Rectangle, Pyramid, Diamond, Cross, U, Lemon}

// Shapes returns the built-in shapes.
func Shapes() []Shape {
	return append([]Shape(nil), shapes...)
}

// ParseShape resolves a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for _, s := range shapes {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// removalMode selects which edges removeNode clears.
type removalMode int

const (
	// fullRemoval excises the node from the playable region.
	fullRemoval removalMode = iota
	// horizontalGate cuts the node off from the row above.
	horizontalGate
	// verticalGate cuts the node off from the column to its right.
	verticalGate
)

// removeNode clears edges around (x,y) according to mode. Gate modes keep
// the node playable and only cut a through-passage.
func (m *Maze) removeNode(x, y int, mode removalMode) {
	switch mode {
	case horizontalGate:
		if y == 0 {
			return
		}
		m.connect(x, y, Up, false)
		if x < m.Width-1 {
			m.connect(x, y, UpRight, false)
		}
		if x != 0 {
			m.connect(x, y, UpLeft, false)
		}
	case verticalGate:
		if x == m.Width-1 {
			return
		}
		if y != 0 {
			m.connect(x, y, UpRight, false)
		}
		m.connect(x, y, Right, false)
		if y < m.Height-1 {
			m.connect(x, y, RightDown, false)
		}
	default:
		m.Nodes[m.index(x, y)].Outside = true
		for _, d := range Directions() {
			if _, _, ok := m.Neighbor(x, y, d); ok {
				m.connect(x, y, d, false)
			}
		}
	}
}

// carveShape removes every node outside the maze's boundary shape.
func (m *Maze) carveShape() error {
	var safe []bool
	switch m.Shape {
	case Rectangle:
		return nil
	case Lemon:
		safe = lemonMask(m.Width, m.Height)
	case Cross:
		safe = crossMask(m.Width, m.Height)
	case Pyramid:
		safe = pyramidMask(m.Width, m.Height)
	case U:
		safe = uMask(m.Width, m.Height)
	case Diamond:
		safe = diamondMask(m.Width, m.Height)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, m.Shape)
	}

	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if !safe[m.index(x, y)] {
				m.removeNode(x, y, fullRemoval)
			}
		}
	}
	return nil
}

// lemonMask keeps a vertically centred band per column whose height follows
// a half sine wave across the width. Column 0 is always dropped.
func lemonMask(w, h int) []bool {
	safe := make([]bool, w*h)
	angle := math.Pi / float64(w)
	mid := float64(h) / 2
	for x := 1; x < w; x++ {
		half := math.RoundToEven(math.Sin(float64(x)*angle)*float64(w-6)) / 2
		lo, hi := int(mid-half), int(mid+half)
		lo = max(lo, 0)
		hi = min(hi, h-1)
		for y := lo; y <= hi; y++ {
			safe[y*w+x] = true
		}
	}
	return safe
}

// crossMask keeps a centred vertical third-band and a horizontal
// third-band lifted by a sixth of the height.
func crossMask(w, h int) []bool {
	safe := make([]bool, w*h)
	wf := ceilDiv(w, 3)
	hf := ceilDiv(h, 3)
	hf2 := ceilDiv(h, 6)
	for y := 0; y < h; y++ {
		for x := wf; x < min(wf*2, w); x++ {
			safe[y*w+x] = true
		}
	}
	for y := max(hf-hf2, 0); y < min(hf*2-hf2, h); y++ {
		for x := 0; x < w; x++ {
			safe[y*w+x] = true
		}
	}
	return safe
}

// pyramidMask keeps bottom-anchored columns whose height grows by h/(w/2)
// per column up to the midpoint and shrinks by the same step after it.
func pyramidMask(w, h int) []bool {
	safe := make([]bool, w*h)
	step := h / (w / 2)
	height := 0
	for x := 0; x < w; x++ {
		if x < w/2 {
			height = min(height+step, h)
		} else {
			height = max(height-step, 0)
		}
		for y := h - 1; y > h-1-height; y-- {
			safe[y*w+x] = true
		}
	}
	return safe
}

// uMask drops a notch two thirds tall from the top of the middle third.
func uMask(w, h int) []bool {
	safe := make([]bool, w*h)
	for i := range safe {
		safe[i] = true
	}
	wf := ceilDiv(w, 3)
	hf := ceilDiv(h, 3)
	for x := wf; x < min(wf*2, w); x++ {
		for y := 0; y < min(hf*2, h); y++ {
			safe[y*w+x] = false
		}
	}
	return safe
}

// diamondMask keeps the cells strictly inside the four lines joining the
// midpoints of the bounding rectangle's sides.
func diamondMask(w, h int) []bool {
	safe := make([]bool, w*h)
	wf := float64(w / 2)
	hf := float64(h / 2)
	slope := -hf / wf
	for x := 0; x < w; x++ {
		fx := float64(x)
		for y := 0; y < h; y++ {
			fy := float64(y)
			if fy <= fx*slope+hf || fy >= fx*-slope+hf {
				continue
			}
			if fx > wf && (fy <= (fx-wf)*-slope || fy >= (fx-wf)*slope+hf*2) {
				continue
			}
			safe[y*w+x] = true
		}
	}
	return safe
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
