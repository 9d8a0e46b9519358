package maze

import (
	"fmt"
	"math/rand"
)

// trialShuffles is the number of random pair swaps applied to the
// candidate directions at every carving step. The result is a biased
// permutation; it shapes the maze's character and must stay as is for
// seeds to keep producing the same mazes.
const trialShuffles = 16

// repairDirections is the neighbour priority of the repair pass.
var repairDirections = [...]Direction{Up, Down, Left, Right}

type carvePhase int

const (
	phaseCarving carvePhase = iota
	phaseRepairing
	phaseDone
	phaseFailed
)

// carver turns possible edges into corridors with a randomized
// backtracking walk. Dead ends pop a random number of stack entries; all
// but the last are parked in a jump pool that the walk resumes from once
// the stack runs dry.
type carver struct {
	m   *Maze
	rng *rand.Rand

	visited   []bool
	stack     []Position
	jumped    []Position
	cursor    Position
	remaining int
	trials    []Direction

	phase carvePhase
	err   error
}

func newCarver(m *Maze, rng *rand.Rand) *carver {
	start := m.EdgeNodes[rng.Intn(len(m.EdgeNodes))]
	m.Start = start

	c := &carver{
		m:         m,
		rng:       rng,
		visited:   make([]bool, len(m.Nodes)),
		stack:     []Position{start},
		cursor:    start,
		remaining: m.PlayableCount() - 1,
		trials:    make([]Direction, 0, directionCount),
		phase:     phaseCarving,
	}
	c.visited[m.index(start.X, start.Y)] = true
	return c
}

// carvePaths opens corridors until every playable node is reachable and
// sets the provisional start. Edge nodes must already be detected.
func (m *Maze) carvePaths(rng *rand.Rand) error {
	c := newCarver(m, rng)
	for c.phase != phaseDone && c.phase != phaseFailed {
		switch c.phase {
		case phaseCarving:
			c.phase = c.carve()
		case phaseRepairing:
			c.phase = c.repair()
		}
	}
	return c.err
}

// carve runs the backtracking walk. It moves on to repairing when both the
// stack and the jump pool are exhausted with nodes still unvisited.
func (c *carver) carve() carvePhase {
	for c.remaining > 0 {
		if c.advance() {
			c.remaining--
			c.stack = append(c.stack, c.cursor)
			continue
		}

		if len(c.stack) == 0 {
			if len(c.jumped) == 0 {
				return phaseRepairing
			}
			i := c.rng.Intn(len(c.jumped))
			c.cursor = c.jumped[i]
			c.jumped = append(c.jumped[:i], c.jumped[i+1:]...)
			continue
		}

		c.backtrack()
	}
	return phaseDone
}

// advance tries the cursor's possible directions in shuffled order and
// carves into the first unvisited neighbour.
func (c *carver) advance() bool {
	node := &c.m.Nodes[c.m.index(c.cursor.X, c.cursor.Y)]
	c.trials = c.trials[:0]
	for _, d := range Directions() {
		if node.Possible.Has(d) {
			c.trials = append(c.trials, d)
		}
	}
	shuffleTrials(c.rng, c.trials)

	for _, d := range c.trials {
		nx, ny, ok := c.m.Neighbor(c.cursor.X, c.cursor.Y, d)
		if !ok || c.visited[c.m.index(nx, ny)] {
			continue
		}
		c.m.connect(c.cursor.X, c.cursor.Y, d, true)
		c.cursor = Position{X: nx, Y: ny}
		c.visited[c.m.index(nx, ny)] = true
		return true
	}
	return false
}

// backtrack pops between one and len(stack) entries. The last popped
// position becomes the cursor; the others go to the jump pool.
func (c *carver) backtrack() {
	for n := c.rng.Intn(len(c.stack)) + 1; n > 0; n-- {
		top := pop(&c.stack)
		if n > 1 {
			c.jumped = append(c.jumped, top)
		} else {
			c.cursor = top
		}
	}
}

// repair links each unvisited playable node to a visited cardinal
// neighbour, scanning in row-major order. Repaired nodes count as visited,
// and the scan repeats until nothing is left or a scan makes no progress.
func (c *carver) repair() carvePhase {
	for {
		pending, repaired := 0, 0
		stuck := Position{X: -1, Y: -1}

		for y := 0; y < c.m.Height; y++ {
			for x := 0; x < c.m.Width; x++ {
				i := c.m.index(x, y)
				if c.m.Nodes[i].Outside || c.visited[i] {
					continue
				}
				d, ok := c.repairDirection(x, y)
				if !ok {
					if pending == 0 {
						stuck = Position{X: x, Y: y}
					}
					pending++
					continue
				}
				c.m.connect(x, y, d, true)
				c.visited[i] = true
				repaired++
			}
		}

		if pending == 0 {
			return phaseDone
		}
		if repaired == 0 {
			c.err = fmt.Errorf("%w: node (%d, %d) cannot be connected to the maze",
				ErrInvariantViolation, stuck.X, stuck.Y)
			return phaseFailed
		}
	}
}

func (c *carver) repairDirection(x, y int) (Direction, bool) {
	for _, d := range repairDirections {
		nx, ny, ok := c.m.Neighbor(x, y, d)
		if ok && c.visited[c.m.index(nx, ny)] {
			return d, true
		}
	}
	return 0, false
}

// shuffleTrials swaps trialShuffles random pairs in place.
func shuffleTrials(rng *rand.Rand, trials []Direction) {
	if len(trials) == 0 {
		return
	}
	for n := 0; n < trialShuffles; n++ {
		p1 := rng.Intn(len(trials))
		p2 := rng.Intn(len(trials))
		if p1 != p2 {
			trials[p1], trials[p2] = trials[p2], trials[p1]
		}
	}
}

// pop removes and returns the last element of a stack of positions.
func pop(s *[]Position) Position {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
