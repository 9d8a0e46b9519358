package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGrid(t *testing.T) {
	t.Run("cardinal only", func(t *testing.T) {
		m := newMaze(1, Rectangle, 5, 4)
		m.buildGrid(rand.New(rand.NewSource(1)), false)

		for _, n := range m.Nodes {
			for _, d := range Directions() {
				_, _, ok := m.Neighbor(n.X, n.Y, d)
				assert.Equal(t, ok && !d.IsDiagonal(), n.Actual.Has(d), "(%d,%d) %s", n.X, n.Y, d)
			}
		}
	})

	t.Run("one diagonal per block", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			m := newMaze(seed, Rectangle, 9, 7)
			m.buildGrid(rand.New(rand.NewSource(seed)), true)

			for y := 0; y < m.Height-1; y++ {
				for x := 0; x < m.Width-1; x++ {
					down := m.Node(x, y).Actual.Has(RightDown)
					up := m.Node(x+1, y).Actual.Has(DownLeft)
					assert.True(t, down != up, "seed %d block (%d,%d)", seed, x, y)
				}
			}
			assertSymmetric(t, m)
		}
	})

	t.Run("promote possible", func(t *testing.T) {
		m := newMaze(1, Rectangle, 3, 3)
		m.buildGrid(rand.New(rand.NewSource(1)), true)
		before := make([]DirectionSet, len(m.Nodes))
		for i := range m.Nodes {
			before[i] = m.Nodes[i].Actual
		}

		m.promotePossible()
		for i := range m.Nodes {
			assert.Equal(t, before[i], m.Nodes[i].Possible)
			assert.True(t, m.Nodes[i].Actual.Empty())
		}
	})
}

func TestConnect(t *testing.T) {
	m := newMaze(0, Rectangle, 3, 3)
	m.connect(1, 1, UpLeft, true)
	assert.True(t, m.Node(1, 1).Actual.Has(UpLeft))
	assert.True(t, m.Node(0, 0).Actual.Has(RightDown))
	assert.True(t, m.HasAnyConnection(0, 0))

	m.connect(0, 0, RightDown, false)
	assert.False(t, m.HasAnyConnection(1, 1))
	assert.False(t, m.HasAnyConnection(0, 0))
}

// assertSymmetric checks that every corridor and every permitted edge is
// recorded on both endpoints and never leaves the grid.
func assertSymmetric(t *testing.T, m *Maze) {
	t.Helper()
	for _, n := range m.Nodes {
		for _, d := range Directions() {
			nx, ny, ok := m.Neighbor(n.X, n.Y, d)
			if n.Actual.Has(d) {
				if assert.True(t, ok, "corridor (%d,%d) %s leaves the grid", n.X, n.Y, d) {
					assert.True(t, m.Node(nx, ny).Actual.Has(d.Opposite()), "corridor (%d,%d) %s dangles", n.X, n.Y, d)
				}
			}
			if n.Possible.Has(d) {
				if assert.True(t, ok, "edge (%d,%d) %s leaves the grid", n.X, n.Y, d) {
					assert.True(t, m.Node(nx, ny).Possible.Has(d.Opposite()), "edge (%d,%d) %s dangles", n.X, n.Y, d)
				}
			}
		}
	}
}
