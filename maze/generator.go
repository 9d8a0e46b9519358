package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Style names the print layout a maze is generated for. Only the
// dimensions depend on it here; drawing is left to the caller.
type Style string

const (
	Normal               Style = "Normal"
	Compact              Style = "Compact"
	CompactPrintFriendly Style = "Compact Print-Friendly"
)

var styles = []Style{Normal, Compact, CompactPrintFriendly}

// Styles returns the known print styles.
func Styles() []Style {
	return append([]Style(nil), styles...)
}

// ParseStyle resolves a style name, ignoring case. An empty name means Normal.
func ParseStyle(name string) (Style, error) {
	if name == "" {
		return Normal, nil
	}
	for _, s := range styles {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

const (
	DefaultWidth  = 36
	DefaultHeight = 44

	// Dimensions forced by any style other than Normal.
	CompactWidth  = 71
	CompactHeight = 88

	minDimension       = 2
	minNestedDimension = 2 * nestedScale
)

// Options selects what Build generates.
type Options struct {
	Width     int
	Height    int
	Shape     Shape
	Diagonals bool
	Enhancer  Enhancer
	Style     Style
}

// DefaultOptions returns a 36x44 rectangle with no diagonals, no enhancer
// and the Normal style.
func DefaultOptions() Options {
	return Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Shape:    Rectangle,
		Enhancer: NoEnhancer,
		Style:    Normal,
	}
}

// Normalize validates the options and resolves names and style-driven
// dimensions. The returned options are what Build actually generates.
func (o Options) Normalize() (Options, error) {
	shape, err := ParseShape(string(o.Shape))
	if err != nil {
		return o, err
	}
	enhancer, err := ParseEnhancer(string(o.Enhancer))
	if err != nil {
		return o, err
	}
	style, err := ParseStyle(string(o.Style))
	if err != nil {
		return o, err
	}
	o.Shape, o.Enhancer, o.Style = shape, enhancer, style

	if o.Style != Normal {
		o.Width, o.Height = CompactWidth, CompactHeight
	}
	if o.Width < minDimension || o.Height < minDimension {
		return o, fmt.Errorf("%w: %dx%d, both sides must be at least %d",
			ErrInvalidDimensions, o.Width, o.Height, minDimension)
	}
	if o.Enhancer == MazeWithinMaze && (o.Width < minNestedDimension || o.Height < minNestedDimension) {
		return o, fmt.Errorf("%w: %s needs at least %dx%d, got %dx%d",
			ErrInvalidDimensions, o.Enhancer, minNestedDimension, minNestedDimension, o.Width, o.Height)
	}
	return o, nil
}

// Build runs the whole pipeline for one maze. The result depends only on
// opts and seed.
func Build(opts Options, seed int64) (*Maze, error) {
	return build(opts, seed, false)
}

// build generates a maze. The nested coarse maze used by MazeWithinMaze
// skips style, shape, diagonals and enhancers.
func build(opts Options, seed int64, nested bool) (*Maze, error) {
	if nested {
		opts.Shape, opts.Enhancer, opts.Style, opts.Diagonals = Rectangle, NoEnhancer, Normal, false
		if opts.Width < 1 || opts.Height < 1 {
			return nil, fmt.Errorf("%w: nested maze is %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
		}
	} else {
		var err error
		if opts, err = opts.Normalize(); err != nil {
			return nil, err
		}
	}

	rng := rand.New(rand.NewSource(seed))
	m := newMaze(seed, opts.Shape, opts.Width, opts.Height)
	m.buildGrid(rng, opts.Diagonals)

	if !nested {
		if err := m.carveShape(); err != nil {
			return nil, err
		}
		switch opts.Enhancer {
		case MazeWithinMaze:
			if err := m.stitchNested(rng); err != nil {
				return nil, err
			}
		case MazeGates:
			m.addGates(rng)
		}
	}

	m.promotePossible()
	m.detectEdgeNodes()
	if len(m.EdgeNodes) == 0 {
		return nil, fmt.Errorf("%w: %s leaves no playable cells at %dx%d",
			ErrInvalidDimensions, opts.Shape, opts.Width, opts.Height)
	}
	if p, split := m.isolatedNode(); split {
		return nil, fmt.Errorf("%w: %s with enhancer %s splits into separate regions at %dx%d, (%d, %d) is cut off",
			ErrInvalidDimensions, opts.Shape, opts.Enhancer, opts.Width, opts.Height, p.X, p.Y)
	}

	// The repair pass repeats its row-major scan until every node is
	// linked, so a region that passed the check above always carves.
	if err := m.carvePaths(rng); err != nil {
		return nil, err
	}
	if err := m.selectTerminals(); err != nil {
		return nil, err
	}
	return m, nil
}

// Generator draws maze seeds from one pseudo-random source. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator whose seed sequence is fixed by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NextSeed draws the seed for the next maze.
func (g *Generator) NextSeed() int64 {
	return g.rng.Int63()
}

// Generate builds one maze from the next seed.
func (g *Generator) Generate(opts Options) (*Maze, error) {
	return Build(opts, g.NextSeed())
}

// GenerateBatch builds count mazes one after another.
func (g *Generator) GenerateBatch(opts Options, count int) ([]*Maze, error) {
	mazes := make([]*Maze, 0, count)
	for i := 0; i < count; i++ {
		m, err := g.Generate(opts)
		if err != nil {
			return nil, fmt.Errorf("maze %d of %d: %w", i+1, count, err)
		}
		mazes = append(mazes, m)
	}
	return mazes, nil
}
