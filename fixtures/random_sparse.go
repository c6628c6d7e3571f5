// File: random_sparse.go
// Role: Erdős–Rényi-style directed random graph generator, used to build
// scenario S2/S3's n=1000, p=0.01 fixture and for property-based tests
// that need many independent random graphs.
//
// Adapted from builder/impl_random_sparse.go's RandomSparse(n,p): same
// Bernoulli-trial-per-ordered-pair structure and stable i-then-j trial
// order for reproducibility, rewritten against graphstore.Graph (no
// vertex IDs, no weights, no undirected branch — every arc here is
// directed, spec §3).
package fixtures

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ergmee/graphstore"
)

const (
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns an Erdős–Rényi-like directed graph on n nodes where
// every ordered pair (i,j), i!=j, is included independently with
// probability p. rng must be non-nil when 0<p<1.
//
// Complexity: O(n^2) Bernoulli trials, matching builder.RandomSparse's
// documented complexity.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graphstore.Graph, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
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
			include := p == 1
			if rng != nil && p > 0 && p < 1 {
				include = rng.Float64() < p
			}
			if include {
				if err := g.InsertArc(graphstore.Node(i), graphstore.Node(j)); err != nil {
					return nil, fmt.Errorf("RandomSparse: InsertArc(%d,%d): %w", i, j, err)
				}
			}
		}
	}

	return g, nil
}
