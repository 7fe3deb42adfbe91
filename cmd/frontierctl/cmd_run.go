// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontiers/engine"
	"github.com/katalvlaran/frontiers/metrics"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	in := &inputFlags{}
	var metricsFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one expansion and print the result as JSON",
		Long: `Grow one frontier per seed until the configured overlap and termination
strategies are satisfied, then print sampled nodes, sampled edges, paths,
per-frontier visits, statistics and overlap metadata as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := in.load(cmd, g)
			if err != nil {
				return err
			}
			opts, err := s.run.EngineOptions()
			if err != nil {
				return err
			}
			opts = append(opts, engine.WithLogger(s.logger))

			var reg *prometheus.Registry
			if metricsFile != "" {
				reg = prometheus.NewRegistry()
				obs, err := metrics.New(reg, "")
				if err != nil {
					return err
				}
				opts = append(opts, engine.WithObserver(obs))
			}

			eng, err := engine.New(s.x, s.run.Seeds, opts...)
			if err != nil {
				return err
			}
			res, err := eng.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			if reg != nil {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			if g.format == "table" {
				formatTable(cmd.OutOrStdout(), []string{"FRONTIERS", "MEETING", "PATH"}, pathRows(s.run.Seeds, res))
				return nil
			}

			return formatJSON(cmd.OutOrStdout(), res)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")

	return cmd
}

func pathRows(seeds []string, res *engine.Result) [][]string {
	rows := make([][]string, 0, len(res.Paths))
	for _, p := range res.Paths {
		rows = append(rows, []string{
			seeds[p.FrontierA] + "~" + seeds[p.FrontierB],
			p.MeetingNode,
			fmt.Sprint(p.Nodes),
		})
	}
	return rows
}
