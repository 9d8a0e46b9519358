package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/domain"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the generate command
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type generateFlags struct {
	width     int
	height    int
	shape     string
	diagonals bool
	enhancer  string
	style     string
	count     int
	seed      int64
	format    string
}

// printedMaze is the json/yaml form of one generated maze.
type printedMaze struct {
	Recipe     domain.Recipe   `json:"recipe" yaml:"recipe"`
	Start      maze.Position   `json:"start" yaml:"start"`
	Finish     maze.Position   `json:"finish" yaml:"finish"`
	PathLength int             `json:"path_length" yaml:"path_length"`
	Playable   int             `json:"playable_cells" yaml:"playable_cells"`
	EdgeNodes  []maze.Position `json:"edge_nodes" yaml:"edge_nodes"`
	Rows       []string        `json:"rows" yaml:"rows"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mazegen",
		Short:        "Generates 8-connected mazes",
		Long:         `mazegen builds shaped, optionally diagonal mazes and prints them as text, JSON or YAML.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newGenerateCmd(), newListCmd())
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	flags := generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more mazes",
		Long:  `Generates mazes from a seeded generator. The same --seed and options always print the same mazes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				flags.seed = time.Now().UnixNano()
			}
			return runGenerate(cmd.OutOrStdout(), flags)
		},
	}

	defaults := maze.DefaultOptions()
	cmd.Flags().IntVar(&flags.width, "width", defaults.Width, "maze width in cells")
	cmd.Flags().IntVar(&flags.height, "height", defaults.Height, "maze height in cells")
	cmd.Flags().StringVar(&flags.shape, "shape", string(defaults.Shape), "boundary shape")
	cmd.Flags().BoolVar(&flags.diagonals, "diagonals", false, "allow diagonal corridors")
	cmd.Flags().StringVar(&flags.enhancer, "enhancer", string(defaults.Enhancer), "difficulty enhancer")
	cmd.Flags().StringVar(&flags.style, "style", string(defaults.Style), "print style; non-Normal styles force 71x88")
	cmd.Flags().IntVar(&flags.count, "count", 1, "number of mazes")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "generator seed (default: current time)")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json or yaml")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available shapes, enhancers and styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runGenerate(out io.Writer, flags generateFlags) error {
	if flags.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", flags.count)
	}
	switch flags.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown --format %q, want text, json or yaml", flags.format)
	}

	opts, err := maze.Options{
		Width:     flags.width,
		Height:    flags.height,
		Shape:     maze.Shape(flags.shape),
		Diagonals: flags.diagonals,
		Enhancer:  maze.Enhancer(flags.enhancer),
		Style:     maze.Style(flags.style),
	}.Normalize()
	if err != nil {
		return err
	}

	mazes, err := maze.NewGenerator(flags.seed).GenerateBatch(opts, flags.count)
	if err != nil {
		return err
	}

	printed := make([]printedMaze, 0, len(mazes))
	for _, m := range mazes {
		p, err := newPrintedMaze(opts, m)
		if err != nil {
			return err
		}
		printed = append(printed, p)
	}

	switch flags.format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(printed)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(printed)
	}

	for n, m := range mazes {
		p := printed[n]
		fmt.Fprintf(out, "# %s %dx%d seed=%d start=(%d,%d) finish=(%d,%d) path=%d\n",
			p.Recipe.Shape, m.Width, m.Height, m.Seed,
			m.Start.X, m.Start.Y, m.Finish.X, m.Finish.Y, p.PathLength)
		fmt.Fprintln(out, m.String())
	}
	return nil
}

func newPrintedMaze(opts maze.Options, m *maze.Maze) (printedMaze, error) {
	length, err := m.PathLength()
	if err != nil {
		return printedMaze{}, err
	}
	return printedMaze{
		Recipe:     domain.NewRecipe(opts, m.Seed),
		Start:      m.Start,
		Finish:     m.Finish,
		PathLength: length,
		Playable:   m.PlayableCount(),
		EdgeNodes:  m.EdgeNodes,
		Rows:       strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n"),
	}, nil
}

func runList(out io.Writer) error {
	fmt.Fprintln(out, "Shapes:")
	for _, s := range maze.Shapes() {
		fmt.Fprintf(out, "  %s\n", s)
	}
	fmt.Fprintln(out, "Enhancers:")
	for _, e := range maze.Enhancers() {
		fmt.Fprintf(out, "  %s\n", e)
	}
	fmt.Fprintln(out, "Styles:")
	for _, s := range maze.Styles() {
		fmt.Fprintf(out, "  %s\n", s)
	}
	return nil
}
