// File: twopath.go
// Role: dense NxN counters for directed and mixed two-paths (spec §3).
//
// Adapted from lvlath's matrix.Dense (matrix/impl_dense.go): same
// flat row-major backing array and bounds-checked accessor shape, narrowed
// to int32 counters (two-path counts never go negative nor need fractional
// precision) and an add-in-place mutator in place of matrix.Dense's
// validate-then-Set, since every call site here is an incremental +1/-1
// update rather than an arbitrary external write.
package graphstore

// CountMatrix is a flat row-major N*N matrix of non-negative two-path
// counts. It is an internal implementation detail of Graph; callers read
// it through Graph.TwoPath/Graph.Mixed.
type CountMatrix struct {
	n    int32
	data []int32
}

func newCountMatrix(n int) *CountMatrix {
	return &CountMatrix{n: int32(n), data: make([]int32, n*n)}
}

func (m *CountMatrix) offset(i, j Node) int { return int(i)*int(m.n) + int(j) }

// At returns the count for the ordered pair (i,j).
//
// Complexity: O(1).
func (m *CountMatrix) At(i, j Node) int32 { return m.data[m.offset(i, j)] }

// add increments (or decrements, for delta<0) the count at (i,j).
//
// Complexity: O(1).
func (m *CountMatrix) add(i, j Node, delta int32) {
	off := m.offset(i, j)
	m.data[off] += delta
}

// TwoPath returns the count of directed two-paths i->k->j, for all k.
func (g *Graph) TwoPath(i, j Node) int32 { return g.twoPath.At(i, j) }

// Mixed returns the count of direction-agnostic shared-partner two-paths
// between i and j: |{k : k adjacent to i (either direction) and k adjacent
// to j (either direction)}|. Read by the AltKTriangle structural effect,
// which needs a symmetric notion of "shared neighbor" regardless of arc
// direction (spec §3's "mixed two-paths").
func (g *Graph) Mixed(i, j Node) int32 { return g.mixed.At(i, j) }

// recomputeFromScratch rebuilds both count matrices by brute-force scan of
// the current arc set. It exists solely so tests can assert the
// incrementally-maintained matrices never drift from their definition
// (spec §8 property 1); production code paths never call it, since doing
// so defeats the O(degree)-per-toggle design the estimator depends on.
func (g *Graph) recomputeFromScratch() (two, mix *CountMatrix) {
	two = newCountMatrix(int(g.n))
	mix = newCountMatrix(int(g.n))
	for i := Node(0); int32(i) < g.n; i++ {
		for _, k := range g.out[i] {
			for _, j := range g.out[k] {
				two.add(i, j, 1)
			}
		}
	}
	for i := Node(0); int32(i) < g.n; i++ {
		ci := g.combined(i)
		for j := Node(0); int32(j) < g.n; j++ {
			if i == j {
				continue
			}
			cj := g.combined(j)
			mix.add(i, j, int32(sharedCount(ci, cj)))
		}
	}

	return two, mix
}

// sharedCount counts the intersection size of two sorted Node slices.
func sharedCount(a, b []Node) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}
