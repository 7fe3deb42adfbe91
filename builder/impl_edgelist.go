// SPDX-License-Identifier: MIT
//
// File: impl_edgelist.go
// Role: EdgeList(r), loading a whitespace separated edge list.
//
// Format:
//   - one edge per line: "u v" (extra columns such as weights are ignored);
//   - blank lines and lines starting with '#' or '%' are skipped;
//   - a line with a single token adds an isolated vertex;
//   - repeated edges (in either direction for undirected graphs) and
//     self-loops on loop-free graphs are skipped, not fatal.

package builder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/frontiers/core"
)

const methodEdgeList = "EdgeList"

// EdgeList returns a Constructor that reads edges from r. The reader is
// consumed when the Constructor runs, so a Constructor must not be reused.
// Complexity: O(lines).
func EdgeList(r io.Reader) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if r == nil {
			return fmt.Errorf("%s: nil reader: %w", methodEdgeList, ErrConstructFailed)
		}

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || line[0] == '#' || line[0] == '%' {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) == 1 {
				if err := g.AddVertex(fields[0]); err != nil {
					return fmt.Errorf("%s: line %d: %w", methodEdgeList, lineNo, err)
				}
				continue
			}
			err := g.AddEdge(fields[0], fields[1])
			switch {
			case err == nil:
			case errors.Is(err, core.ErrDuplicateEdge), errors.Is(err, core.ErrLoopNotAllowed):
				if err := g.AddVertex(fields[0]); err != nil {
					return fmt.Errorf("%s: line %d: %w", methodEdgeList, lineNo, err)
				}
			default:
				return fmt.Errorf("%s: line %d %q: %w: %w", methodEdgeList, lineNo, line, ErrMalformedLine, err)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%s: read: %w: %w", methodEdgeList, ErrConstructFailed, err)
		}

		return nil
	}
}
