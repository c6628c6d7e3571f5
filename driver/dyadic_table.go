// File: dyadic_table.go
// Role: binds estconfig's dyadicParams entries to effects.DyadicTable
// implementations backed by already-loaded nodal attributes. Neither
// spec §6 nor its config grammar names a separate NxN covariate-matrix
// file format, so EdgeCov/GeoDistance are resolved as functions of two
// per-node attribute columns rather than a loaded dyadic matrix — the
// only covariate shape the documented input files can actually supply.
package driver

import (
	"math"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/graphstore"
)

// productTable implements effects.DyadicTable as the product of a single
// continuous attribute's values at the pair's two endpoints (EdgeCov's
// binding: "the covariate attached to this dyad" approximated as
// attr[i]*attr[j], the natural dyadic reduction of a nodal covariate).
type productTable struct {
	attrs *graphstore.Attributes
	idx   int
}

func (t productTable) At(i, j graphstore.Node) (float64, bool) {
	vi, erri := t.attrs.Continuous(t.idx, i)
	vj, errj := t.attrs.Continuous(t.idx, j)
	if erri != nil || errj != nil || isNaN(vi) || isNaN(vj) {
		return 0, false
	}

	return vi * vj, true
}

// coordTable implements effects.DyadicTable as the Euclidean distance
// between two nodes' (lat, long) coordinate pair, binding GeoDistance's
// two attribute-name arguments.
type coordTable struct {
	attrs   *graphstore.Attributes
	latIdx  int
	longIdx int
}

func (t coordTable) At(i, j graphstore.Node) (float64, bool) {
	latI, e1 := t.attrs.Continuous(t.latIdx, i)
	longI, e2 := t.attrs.Continuous(t.longIdx, i)
	latJ, e3 := t.attrs.Continuous(t.latIdx, j)
	longJ, e4 := t.attrs.Continuous(t.longIdx, j)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
		return 0, false
	}
	if isNaN(latI) || isNaN(longI) || isNaN(latJ) || isNaN(longJ) {
		return 0, false
	}
	dLat := latI - latJ
	dLong := longI - longJ

	return math.Sqrt(dLat*dLat + dLong*dLong), true
}

func isNaN(v float64) bool { return v != v }

var _ effects.DyadicTable = productTable{}
var _ effects.DyadicTable = coordTable{}
