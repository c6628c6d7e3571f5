// File: arcs.go
// Role: arc lifecycle (InsertArc/RemoveArc/IsArc/IsArcIgnoreDir) and the
// neighbor-enumeration helpers the effects registry consumes.
// Determinism:
//   - Out()/In() return node-sorted slices; callers never assume a
//     particular container (spec §4.1), but sorted output keeps tests
//     reproducible.
// Invariants maintained on every insert/remove:
//   - out[i]/in[j] sorted and deduplicated.
//   - twoPath and mixed matrices kept consistent with the arc set in
//     O(degree) time (spec §3).
package graphstore

import "sort"

// IsArc reports whether the arc i->j is present.
//
// Complexity: O(1).
func (g *Graph) IsArc(i, j Node) bool {
	_, ok := g.arcs[g.key(i, j)]

	return ok
}

// IsArcIgnoreDir reports whether i->j or j->i is present.
//
// Complexity: O(1).
func (g *Graph) IsArcIgnoreDir(i, j Node) bool {
	return g.IsArc(i, j) || g.IsArc(j, i)
}

// Out returns the sorted out-neighbors of i. The returned slice must be
// treated as read-only; callers that need to mutate should copy it.
func (g *Graph) Out(i Node) []Node { return g.out[i] }

// In returns the sorted in-neighbors of i. The returned slice must be
// treated as read-only; callers that need to mutate should copy it.
func (g *Graph) In(i Node) []Node { return g.in[i] }

// InsertArc adds the arc i->j.
//
// Pre: IsArc(i,j) is false (spec §4.1). Self-loops and out-of-range nodes
// are rejected before any mutation occurs, so a failed call never leaves
// the graph partially updated.
//
// Complexity: O(degree(i) + degree(j)) for the two-path/mixed updates;
// O(log degree) for the sorted-slice inserts.
func (g *Graph) InsertArc(i, j Node) error {
	if i == j {
		return ErrSelfLoop
	}
	if err := g.checkNode(i); err != nil {
		return err
	}
	if err := g.checkNode(j); err != nil {
		return err
	}
	if g.IsArc(i, j) {
		return ErrArcExists
	}

	reciprocalExisted := g.IsArc(j, i)

	// Directed two-path counts depend only on the *existing* neighbors of
	// i and j, untouched by this toggle: i->j->x becomes a two-path for
	// every existing out-neighbor x of j, and x->i->j becomes one for
	// every existing in-neighbor x of i.
	for _, x := range g.out[j] {
		g.twoPath.add(i, x, 1)
	}
	for _, x := range g.in[i] {
		g.twoPath.add(x, j, 1)
	}

	// Mixed (direction-agnostic shared-partner) counts only change the
	// first time i and j become connected in either direction.
	if !reciprocalExisted {
		for _, x := range g.combined(j) {
			if x == i {
				continue
			}
			g.mixed.add(i, x, 1)
			g.mixed.add(x, i, 1)
		}
		for _, x := range g.combined(i) {
			if x == j {
				continue
			}
			g.mixed.add(j, x, 1)
			g.mixed.add(x, j, 1)
		}
	}

	g.out[i] = insertSorted(g.out[i], j)
	g.in[j] = insertSorted(g.in[j], i)
	g.arcs[g.key(i, j)] = struct{}{}

	if g.snow != nil {
		g.snow.onToggle(g, i, j, true)
	}

	return nil
}

// RemoveArc deletes the arc i->j.
//
// Pre: IsArc(i,j) is true (spec §4.1).
//
// Complexity: symmetric to InsertArc.
func (g *Graph) RemoveArc(i, j Node) error {
	if err := g.checkNode(i); err != nil {
		return err
	}
	if err := g.checkNode(j); err != nil {
		return err
	}
	if !g.IsArc(i, j) {
		return ErrArcMissing
	}

	if g.snow != nil {
		g.snow.onToggle(g, i, j, false)
	}

	delete(g.arcs, g.key(i, j))
	g.out[i] = removeSorted(g.out[i], j)
	g.in[j] = removeSorted(g.in[j], i)

	reciprocalExists := g.IsArc(j, i)

	for _, x := range g.out[j] {
		g.twoPath.add(i, x, -1)
	}
	for _, x := range g.in[i] {
		g.twoPath.add(x, j, -1)
	}

	if !reciprocalExists {
		for _, x := range g.combined(j) {
			if x == i {
				continue
			}
			g.mixed.add(i, x, -1)
			g.mixed.add(x, i, -1)
		}
		for _, x := range g.combined(i) {
			if x == j {
				continue
			}
			g.mixed.add(j, x, -1)
			g.mixed.add(x, j, -1)
		}
	}

	return nil
}

// combined returns the (freshly built) union of out- and in-neighbors of i,
// used only by the mixed two-path maintenance above; it is not cached
// because InsertArc/RemoveArc call it at most twice per toggle and degree
// is expected to stay small relative to n for the sparse networks this
// estimator targets.
func (g *Graph) combined(i Node) []Node {
	out, in := g.out[i], g.in[i]
	merged := make([]Node, 0, len(out)+len(in))
	a, b := 0, 0
	for a < len(out) && b < len(in) {
		switch {
		case out[a] < in[b]:
			merged = append(merged, out[a])
			a++
		case out[a] > in[b]:
			merged = append(merged, in[b])
			b++
		default:
			merged = append(merged, out[a])
			a++
			b++
		}
	}
	merged = append(merged, out[a:]...)
	merged = append(merged, in[b:]...)

	return merged
}

// ArcCorrection returns ln(L/(N-L)) for the IFD sampler's Arc-column
// reconstruction (spec §4.1/§4.4), where L is the current arc count and N
// is the number of ordered dyads n*(n-1).
func (g *Graph) ArcCorrection() float64 {
	l := float64(len(g.arcs))
	nDyads := float64(g.n) * float64(g.n-1)

	return logRatio(l, nDyads-l)
}

func insertSorted(s []Node, v Node) []Node {
	idx := sort.Search(len(s), func(k int) bool { return s[k] >= v })
	s = append(s, 0)
	copy(s[idx+1:], s[idx:])
	s[idx] = v

	return s
}

func removeSorted(s []Node, v Node) []Node {
	idx := sort.Search(len(s), func(k int) bool { return s[k] >= v })
	if idx < len(s) && s[idx] == v {
		s = append(s[:idx], s[idx+1:]...)
	}

	return s
}
