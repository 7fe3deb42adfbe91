// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontiers/builder"
	"github.com/katalvlaran/frontiers/config"
	"github.com/katalvlaran/frontiers/core"
	"github.com/katalvlaran/frontiers/expander"
)

var (
	errNoGraph = errors.New("no graph: pass --graph or set graph in the config")
	errNoSeeds = errors.New("no seeds: pass --seeds or set seeds in the config")
)

// inputFlags select the graph, the run file and per-invocation overrides.
type inputFlags struct {
	graph    string
	config   string
	directed bool
	seeds    []string
	induce   []string
	policy   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.graph, "graph", "", "Edge-list file (\"u v\" per line, # comments; - for stdin)")
	fl.StringVarP(&f.config, "config", "c", "", "YAML run file")
	fl.BoolVar(&f.directed, "directed", false, "Treat edge-list lines as directed edges")
	fl.StringArrayVar(&f.seeds, "seeds", nil, "Seed node id, repeatable (overrides the config)")
	fl.StringArrayVar(&f.induce, "induce", nil, "Keep only this node id, repeatable")
	fl.StringVar(&f.policy, "policy", "", "Expansion policy (overrides the config)")
}

// session is everything a subcommand needs after input resolution.
type session struct {
	run    *config.Run
	graph  *core.Graph
	x      expander.Expander
	logger *logrus.Logger
}

// load resolves the run file and flag overrides, reads the graph and wraps
// it as configured.
func (f *inputFlags) load(cmd *cobra.Command, g *globalFlags) (*session, error) {
	run := &config.Run{}
	if f.config != "" {
		var err error
		if run, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.graph != "" {
		run.Graph = f.graph
	}
	if len(f.seeds) > 0 {
		run.Seeds = f.seeds
	}
	if f.policy != "" {
		run.Policy = f.policy
	}
	if g.logLevel != "" {
		run.Logging.Level = g.logLevel
	}
	if run.Graph == "" {
		return nil, errNoGraph
	}
	if len(run.Seeds) == 0 {
		return nil, errNoSeeds
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}

	logger, err := run.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	graph, err := readGraph(cmd.InOrStdin(), run.Graph, f.directed)
	if err != nil {
		return nil, err
	}
	if len(f.induce) > 0 {
		graph = core.InducedSubgraph(graph, f.induce)
	}
	logger.WithFields(logrus.Fields{
		"graph":    run.Graph,
		"vertices": graph.VertexCount(),
		"edges":    graph.EdgeCount(),
	}).Info("graph loaded")

	x, err := run.WrapExpander(expander.FromGraph(graph))
	if err != nil {
		return nil, err
	}

	return &session{run: run, graph: graph, x: x, logger: logger}, nil
}

func readGraph(stdin io.Reader, path string, directed bool) (*core.Graph, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}
	var gopts []core.GraphOption
	if directed {
		gopts = append(gopts, core.WithDirected())
	}

	return builder.BuildGraph(gopts, nil, builder.EdgeList(r))
}
