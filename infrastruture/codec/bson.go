// Package codec serializes finished mazes for the cache.
package codec

import (
	"fmt"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"go.mongodb.org/mongo-driver/bson"
)

// BSON encodes mazes as BSON documents of their snapshot.
// Implements i.MazeCodec.
type BSON struct{}

// NewBSON returns the BSON maze codec.
func NewBSON() i.MazeCodec {
	return BSON{}
}

// Encode marshals the maze snapshot.
func (BSON) Encode(m *maze.Maze) ([]byte, error) {
	data, err := bson.Marshal(m.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encoding maze: %w", err)
	}
	return data, nil
}

// Decode unmarshals a snapshot and rebuilds the maze from it.
func (BSON) Decode(data []byte) (*maze.Maze, error) {
	var s maze.Snapshot
	if err := bson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding maze: %w", err)
	}
	return maze.FromSnapshot(s)
}
