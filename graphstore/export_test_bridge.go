package graphstore

// Test-only bridge exposing the unexported from-scratch recomputation to
// graphstore_test, mirroring lvlath's export_privates_for_test.go
// pattern: keep the production API narrow while still white-box-testing
// the invariant that matters (spec §8 property 1).

// ExportForTest_RecomputeFromScratch recomputes both count matrices by
// brute-force scan, for tests to diff against the incrementally
// maintained ones.
func (g *Graph) ExportForTest_RecomputeFromScratch() (two, mix *CountMatrix) {
	return g.recomputeFromScratch()
}
