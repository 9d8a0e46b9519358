package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestOptionsNormalize(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    Options
		wantErr error
	}{
		{
			name: "defaults",
			opts: DefaultOptions(),
			want: DefaultOptions(),
		},
		{
			name: "names resolved ignoring case",
			opts: Options{Width: 10, Height: 12, Shape: "lemon", Enhancer: "maze gates", Style: "normal"},
			want: Options{Width: 10, Height: 12, Shape: Lemon, Enhancer: MazeGates, Style: Normal},
		},
		{
			name: "empty enhancer and style",
			opts: Options{Width: 10, Height: 12, Shape: Cross},
			want: Options{Width: 10, Height: 12, Shape: Cross, Enhancer: NoEnhancer, Style: Normal},
		},
		{
			name: "compact style widens",
			opts: Options{Width: 10, Height: 12, Shape: Rectangle, Style: Compact},
			want: Options{Width: CompactWidth, Height: CompactHeight, Shape: Rectangle, Enhancer: NoEnhancer, Style: Compact},
		},
		{
			name: "print friendly style widens",
			opts: Options{Width: 1, Height: 1, Shape: U, Style: "Compact Print-Friendly"},
			want: Options{Width: CompactWidth, Height: CompactHeight, Shape: U, Enhancer: NoEnhancer, Style: CompactPrintFriendly},
		},
		{
			name:    "unknown shape",
			opts:    Options{Width: 10, Height: 10, Shape: "Triangle"},
			wantErr: ErrUnknownShape,
		},
		{
			name:    "unknown enhancer",
			opts:    Options{Width: 10, Height: 10, Shape: Rectangle, Enhancer: "Portals"},
			wantErr: ErrUnknownEnhancer,
		},
		{
			name:    "unknown style",
			opts:    Options{Width: 10, Height: 10, Shape: Rectangle, Style: "Poster"},
			wantErr: ErrUnknownStyle,
		},
		{
			name:    "too narrow",
			opts:    Options{Width: 1, Height: 10, Shape: Rectangle},
			wantErr: ErrInvalidDimensions,
		},
		{
			name:    "nested maze too small",
			opts:    Options{Width: 15, Height: 40, Shape: Rectangle, Enhancer: MazeWithinMaze},
			wantErr: ErrInvalidDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Normalize()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(Options{Width: 8, Height: 8, Shape: "Star"}, 1)
	assert.ErrorIs(t, err, ErrUnknownShape)

	// A lemon this narrow has no playable cells at all.
	_, err = Build(Options{Width: 4, Height: 4, Shape: Lemon}, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestBuildRejectsSplitRegions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "u notch cuts the full height",
			opts: Options{Width: 3, Height: 2, Shape: U},
		},
		{
			name: "u bottom bar cropped by the nested footprint",
			opts: Options{Width: 17, Height: 23, Shape: U, Enhancer: MazeWithinMaze},
		},
		{
			name: "narrow pyramid gate strands the tip",
			opts: Options{Width: 4, Height: 12, Shape: Pyramid, Enhancer: MazeGates},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				_, err := Build(tt.opts, seed)
				require.ErrorIs(t, err, ErrInvalidDimensions)
				assert.True(t, IsConfigurationError(err))
				assert.ErrorContains(t, err, "separate regions")
			}
		})
	}

	// Cropping keeps the bottom bar once the height leaves it below the notch.
	_, err := Build(Options{Width: 17, Height: 24, Shape: U, Enhancer: MazeWithinMaze}, 1)
	assert.NoError(t, err)
}

func TestBuildSmallSizes(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 3
	}
	for _, shape := range Shapes() {
		for _, enhancer := range Enhancers() {
			for _, diagonals := range []bool{false, true} {
				for w := 2; w <= 26; w += step {
					for h := 2; h <= 26; h += step {
						opts := Options{Width: w, Height: h, Shape: shape, Enhancer: enhancer, Diagonals: diagonals}
						m, err := Build(opts, int64(w*100+h))
						if err != nil {
							assert.True(t, IsConfigurationError(err), "%s/%s %dx%d: %v", shape, enhancer, w, h, err)
							continue
						}
						length, err := m.PathLength()
						assert.NoError(t, err, "%s/%s %dx%d", shape, enhancer, w, h)
						if m.PlayableCount() > 1 {
							assert.Positive(t, length, "%s/%s %dx%d", shape, enhancer, w, h)
						}
					}
				}
			}
		}
	}
}

func TestBuildCompactStyle(t *testing.T) {
	m, err := Build(Options{Width: 10, Height: 10, Shape: Rectangle, Style: Compact}, 8)
	require.NoError(t, err)
	assert.Equal(t, CompactWidth, m.Width)
	assert.Equal(t, CompactHeight, m.Height)
}

func TestGenerator(t *testing.T) {
	opts := Options{Width: 12, Height: 14, Shape: Diamond, Diagonals: true}

	t.Run("batch", func(t *testing.T) {
		mazes, err := NewGenerator(99).GenerateBatch(opts, 5)
		require.NoError(t, err)
		require.Len(t, mazes, 5)

		seeds := make(map[int64]struct{})
		for _, m := range mazes {
			seeds[m.Seed] = struct{}{}
		}
		assert.Len(t, seeds, 5)
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a, err := NewGenerator(7).GenerateBatch(opts, 3)
		require.NoError(t, err)
		b, err := NewGenerator(7).GenerateBatch(opts, 3)
		require.NoError(t, err)
		for i := range a {
			assert.Equal(t, a[i].Snapshot(), b[i].Snapshot())
		}
	})

	t.Run("generate replays by seed", func(t *testing.T) {
		g := NewGenerator(3)
		m, err := g.Generate(opts)
		require.NoError(t, err)

		again, err := Build(opts, m.Seed)
		require.NoError(t, err)
		assert.Equal(t, m.String(), again.String())
	})

	t.Run("batch stops on error", func(t *testing.T) {
		_, err := NewGenerator(1).GenerateBatch(Options{Width: 0, Height: 5, Shape: Rectangle}, 2)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
