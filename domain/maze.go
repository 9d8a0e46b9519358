// Package domain holds the records the maze service persists and exchanges.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

// Recipe is everything needed to rebuild a maze byte for byte.
type Recipe struct {
	Width     int           `json:"width" bson:"width" yaml:"width"`
	Height    int           `json:"height" bson:"height" yaml:"height"`
	Shape     maze.Shape    `json:"shape" bson:"shape" yaml:"shape"`
	Diagonals bool          `json:"diagonals" bson:"diagonals" yaml:"diagonals"`
	Enhancer  maze.Enhancer `json:"enhancer" bson:"enhancer" yaml:"enhancer"`
	Style     maze.Style    `json:"style" bson:"style" yaml:"style"`
	Seed      int64         `json:"seed" bson:"seed" yaml:"seed"`
}

// NewRecipe pairs normalized options with the seed they were built from.
func NewRecipe(opts maze.Options, seed int64) Recipe {
	return Recipe{
		Width:     opts.Width,
		Height:    opts.Height,
		Shape:     opts.Shape,
		Diagonals: opts.Diagonals,
		Enhancer:  opts.Enhancer,
		Style:     opts.Style,
		Seed:      seed,
	}
}

// Options returns the generation options of the recipe.
func (r Recipe) Options() maze.Options {
	return maze.Options{
		Width:     r.Width,
		Height:    r.Height,
		Shape:     r.Shape,
		Diagonals: r.Diagonals,
		Enhancer:  r.Enhancer,
		Style:     r.Style,
	}
}

// CacheKey identifies the maze the recipe builds.
func (r Recipe) CacheKey() string {
	return fmt.Sprintf("maze:%dx%d:%s:%t:%s:%s:%d",
		r.Width, r.Height, keyPart(string(r.Shape)), r.Diagonals,
		keyPart(string(r.Enhancer)), keyPart(string(r.Style)), r.Seed)
}

func keyPart(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// MazeRecord is the stored summary of a generated maze. The maze itself is
// rebuilt from the recipe on demand.
type MazeRecord struct {
	ID            uuid.UUID     `bson:"_id"`
	Recipe        Recipe        `bson:"recipe"`
	Start         maze.Position `bson:"start"`
	Finish        maze.Position `bson:"finish"`
	PathLength    int           `bson:"pathLength"`
	PlayableCells int           `bson:"playableCells"`
	CreatedAt     time.Time     `bson:"createdAt"`
}

// NewMazeRecord summarizes a finished maze under the given ID.
func NewMazeRecord(id uuid.UUID, recipe Recipe, m *maze.Maze) (*MazeRecord, error) {
	length, err := m.PathLength()
	if err != nil {
		return nil, err
	}
	return &MazeRecord{
		ID:            id,
		Recipe:        recipe,
		Start:         m.Start,
		Finish:        m.Finish,
		PathLength:    length,
		PlayableCells: m.PlayableCount(),
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// GenerateRequest asks for Count mazes built with Options.
type GenerateRequest struct {
	Options maze.Options
	Count   int
}

// GeneratedMaze is a maze together with its record and replay token.
type GeneratedMaze struct {
	Record      *MazeRecord
	Maze        *maze.Maze
	ReplayToken string
}
