// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontiers/sweep"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	var limit int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the configured variants in parallel and compare them",
		Long: `Run every variant listed in the config (or the base run alone) over the
same graph and seeds, and report termination reason, iterations, sample size,
paths found and mean stretch against BFS distances between seeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := in.load(cmd, g)
			if err != nil {
				return err
			}
			got, err := sweep.Compare(cmd.Context(), s.x, s.run.Seeds, s.run.SweepVariants(),
				sweep.WithLimit(limit), sweep.WithLogger(s.logger))
			if err != nil {
				return err
			}

			if g.format != "table" {
				return formatJSON(cmd.OutOrStdout(), got)
			}
			headers := []string{"VARIANT", "REASON", "ITERATIONS", "NODES", "EDGES", "PATHS", "STRETCH"}
			rows := make([][]string, 0, len(got))
			for _, r := range got {
				rows = append(rows, []string{
					r.Name,
					string(r.Reason),
					strconv.Itoa(r.Iterations),
					strconv.Itoa(r.SampledNodes),
					strconv.Itoa(r.SampledEdges),
					strconv.Itoa(r.Paths),
					fmt.Sprintf("%.3f", r.MeanStretch),
				})
			}
			formatTable(cmd.OutOrStdout(), headers, rows)

			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum concurrent runs (0 = unbounded)")

	return cmd
}
