// File: snowball.go
// Role: optional snowball-zone state for useConditionalEstimation mode
// (spec §3's "Snowball zones").
package graphstore

// Snowball holds per-node zone indices and the preceding-wave degree the
// conditional sampler needs to keep the outermost wave's structure fixed.
type Snowball struct {
	z              []int32 // z[v] = zone of v
	zMax           int32   // Z
	inner          []Node  // nodes with z < Z, ascending
	prevWaveDegree []int32 // prevWaveDegree[v]
}

// AttachSnowball installs snowball zone data on g. zones must have length
// g.N(); zMax is Z (spec §3). PrevWaveDegree is computed once from the
// arcs already present in g (typically called right after loading the
// observed network and before any sampler runs).
func (g *Graph) AttachSnowball(zones []int32, zMax int) error {
	if len(zones) != int(g.n) {
		return ErrNodeRange
	}
	s := &Snowball{
		z:              append([]int32(nil), zones...),
		zMax:           int32(zMax),
		prevWaveDegree: make([]int32, g.n),
	}
	for v := Node(0); int32(v) < g.n; v++ {
		if s.z[v] < s.zMax {
			s.inner = append(s.inner, v)
		}
	}
	for v := Node(0); int32(v) < g.n; v++ {
		var cnt int32
		for _, x := range g.combined(v) {
			if s.z[x] == s.z[v]-1 {
				cnt++
			}
		}
		s.prevWaveDegree[v] = cnt
	}
	g.snow = s

	return nil
}

// Zone returns node v's zone index.
func (s *Snowball) Zone(v Node) int32 { return s.z[v] }

// ZMax returns Z, the outermost zone index.
func (s *Snowball) ZMax() int32 { return s.zMax }

// InnerNodes returns the nodes with zone < Z, ascending (spec §3's
// "inner_nodes"). The slice is read-only.
func (s *Snowball) InnerNodes() []Node { return s.inner }

// PrevWaveDegree returns v's count of ignore-direction neighbors in zone
// Zone(v)-1 (spec §3).
func (s *Snowball) PrevWaveDegree(v Node) int32 { return s.prevWaveDegree[v] }

// onToggle updates prevWaveDegree in lockstep with an accepted arc
// insert/remove (spec §3: "mutated by the sampler in lockstep with arc
// toggles"). It is a no-op when the ignore-direction connectivity between
// i and j is unchanged by this toggle (i.e. the reciprocal arc already
// covered it).
func (s *Snowball) onToggle(g *Graph, i, j Node, added bool) {
	if g.IsArc(j, i) {
		// Ignore-direction connectivity between i and j predates (added)
		// or survives (!added) this toggle; nothing to update.
		return
	}
	delta := int32(1)
	if !added {
		delta = -1
	}
	if s.z[j] == s.z[i]-1 {
		s.prevWaveDegree[i] += delta
	}
	if s.z[i] == s.z[j]-1 {
		s.prevWaveDegree[j] += delta
	}
}
