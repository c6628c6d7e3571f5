// File: snowball.go
// Role: derive snowball zones from a seed set via breadth-first layering,
// for tests that need a graph already in "loaded from a zoneFile" shape
// (spec §6's zoneFile) — e.g. scenario S5's two-wave, 100-node sample.
//
// Adapted from algorithms/bfs.go's walker struct: the same
// init/visit/enqueueNeighbors split, narrowed to layer-assignment (no
// hooks, no parent tracking) and operating on graphstore.Graph's
// ignore-direction adjacency rather than core.Graph's edge objects.
package fixtures

import "github.com/katalvlaran/ergmee/graphstore"

// zoneItem pairs a node with its BFS depth (= provisional zone).
type zoneItem struct {
	v     graphstore.Node
	depth int
}

// DeriveZones runs a breadth-first layering from seeds (zone 0) out to
// zone zMax and returns a per-node zone slice. Nodes unreached within
// zMax hops are clamped to zMax (spec's "outermost wave"); every seed must
// be distinct and in range.
//
// Complexity: O(V+E), the same as lvlath's BFS.
func DeriveZones(g *graphstore.Graph, seeds []graphstore.Node, zMax int) []int32 {
	n := g.N()
	zones := make([]int32, n)
	for i := range zones {
		zones[i] = int32(zMax)
	}
	visited := make([]bool, n)
	w := &zoneWalker{g: g, zones: zones, visited: visited, zMax: zMax}

	queue := make([]zoneItem, 0, n)
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			zones[s] = 0
			queue = append(queue, zoneItem{s, 0})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		queue = append(queue, w.enqueueNeighbors(cur.v, cur.depth)...)
	}

	return zones
}

// zoneWalker holds the mutable BFS state, mirroring algorithms/bfs.go's
// walker struct.
type zoneWalker struct {
	g       *graphstore.Graph
	zones   []int32
	visited []bool
	zMax    int
}

// enqueueNeighbors visits v's ignore-direction neighbors and returns the
// newly-discovered ones at depth+1, or nil once zMax has been reached.
func (w *zoneWalker) enqueueNeighbors(v graphstore.Node, depth int) []zoneItem {
	if depth >= w.zMax {
		return nil
	}
	var next []zoneItem
	for _, nb := range w.g.Out(v) {
		next = w.visit(nb, depth, next)
	}
	for _, nb := range w.g.In(v) {
		next = w.visit(nb, depth, next)
	}

	return next
}

func (w *zoneWalker) visit(nb graphstore.Node, depth int, next []zoneItem) []zoneItem {
	if w.visited[nb] {
		return next
	}
	w.visited[nb] = true
	w.zones[nb] = int32(depth + 1)

	return append(next, zoneItem{nb, depth + 1})
}
