// File: complete.go
// Role: complete digraph K_n (every ordered pair an arc) — a deterministic
// fixture for tests that need a dense, RNG-free graph.
//
// Adapted from builder/impl_complete.go's Complete(n), dropping the
// undirected-mirroring branch since graphstore arcs are always directed.
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/ergmee/graphstore"
)

const minCompleteNodes = 1

// Complete returns the complete directed graph on n nodes: every ordered
// pair (i,j), i!=j, is an arc.
//
// Complexity: O(n^2).
func Complete(n int) (*graphstore.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	g, err := graphstore.New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.InsertArc(graphstore.Node(i), graphstore.Node(j)); err != nil {
				return nil, fmt.Errorf("Complete: InsertArc(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
