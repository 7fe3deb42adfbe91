// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/core"
)

func newGenCmd() *cobra.Command {
	var (
		prefix string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "gen <path|cycle|star|complete|grid|random> <n> [m|p]",
		Short: "Print a synthetic topology as an edge list",
		Long: `Generate a deterministic test topology and print it in the edge-list
format read by run and compare. grid takes rows and columns; random takes
a vertex count and an edge probability.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := topology(args)
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{builder.WithSeed(seed)}
			if prefix != "" {
				bopts = append(bopts, builder.WithSymbNumb(prefix))
			}
			g, err := builder.BuildGraph(nil, bopts, con)
			if err != nil {
				return err
			}
			writeEdgeList(cmd, g)

			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Vertex id prefix (e.g. N gives N0, N1, ...)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for the random topology")

	return cmd
}

func topology(args []string) (builder.Constructor, error) {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", args[1], err)
	}
	third := func() (string, error) {
		if len(args) < 3 {
			return "", fmt.Errorf("%s needs a third argument", args[0])
		}
		return args[2], nil
	}

	switch args[0] {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		s, err := third()
		if err != nil {
			return nil, err
		}
		m, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("columns %q: %w", s, err)
		}
		return builder.Grid(n, m), nil
	case "random":
		s, err := third()
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("probability %q: %w", s, err)
		}
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", args[0])
	}
}

// writeEdgeList prints one "u v" line per edge and a bare id per isolated
// vertex, so the output round-trips through builder.EdgeList.
func writeEdgeList(cmd *cobra.Command, g *core.Graph) {
	out := cmd.OutOrStdout()
	for _, e := range g.Edges() {
		fmt.Fprintf(out, "%s %s\n", e.From, e.To)
	}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			fmt.Fprintln(out, v)
		}
	}
}
