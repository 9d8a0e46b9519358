package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateText(t *testing.T) {
	out, err := execute(t, "generate", "--width", "6", "--height", "5", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+2*5-1)
	assert.True(t, strings.HasPrefix(lines[0], "# Rectangle 6x5 seed="))
	assert.Equal(t, 1, strings.Count(out, "S"))
	assert.Equal(t, 1, strings.Count(out, "F"))

	again, err := execute(t, "generate", "--width", "6", "--height", "5", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "generate", "--width", "12", "--height", "12", "--shape", "diamond",
		"--diagonals", "--count", "3", "--seed", "8", "--format", "json")
	require.NoError(t, err)

	var printed []printedMaze
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	require.Len(t, printed, 3)
	for _, p := range printed {
		assert.Equal(t, maze.Diamond, p.Recipe.Shape)
		assert.True(t, p.Recipe.Diagonals)
		assert.Len(t, p.Rows, 2*12-1)

		m, err := maze.Build(p.Recipe.Options(), p.Recipe.Seed)
		require.NoError(t, err)
		assert.Equal(t, p.Start, m.Start)
		assert.Equal(t, p.Finish, m.Finish)
	}
}

func TestGenerateYAML(t *testing.T) {
	out, err := execute(t, "generate", "--style", "Compact", "--enhancer", "maze within maze", "--seed", "1", "--format", "yaml")
	require.NoError(t, err)

	var printed []printedMaze
	require.NoError(t, yaml.Unmarshal([]byte(out), &printed))
	require.Len(t, printed, 1)
	assert.Equal(t, maze.CompactWidth, printed[0].Recipe.Width)
	assert.Equal(t, maze.CompactHeight, printed[0].Recipe.Height)
	assert.Equal(t, maze.MazeWithinMaze, printed[0].Recipe.Enhancer)
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "generate", "--shape", "Hexagon")
	assert.ErrorIs(t, err, maze.ErrUnknownShape)

	_, err = execute(t, "generate", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "generate", "--count", "0")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lemon")
	assert.Contains(t, out, "Maze Gates")
	assert.Contains(t, out, "Compact Print-Friendly")
}
