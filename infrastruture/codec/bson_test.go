package codec

import (
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBSON(t *testing.T) {
	m, err := maze.Build(maze.Options{Width: 16, Height: 16, Shape: maze.U, Diagonals: true}, 21)
	require.NoError(t, err)

	c := NewBSON()
	data, err := c.Encode(m)
	require.NoError(t, err)

	decoded, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot(), decoded.Snapshot())
	assert.Equal(t, m.String(), decoded.String())

	_, err = c.Decode([]byte("garbage"))
	assert.Error(t, err)
}
