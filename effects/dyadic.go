// File: dyadic.go
// Role: dyadic-covariate change statistics (spec §4.2's Dyadic kind): a
// value attached to the (i,j) pair itself rather than to either endpoint.
// The driver builds the covariate table from loaded nodal attributes
// (driver/dyadic_table.go); effects only consumes it through the
// DyadicTable interface, captured in closures built at
// registry-construction time.
package effects

import "github.com/katalvlaran/ergmee/graphstore"

// DyadicTable looks up a covariate value for a directed pair. Implemented
// by the driver's attribute-backed tables; kept as an interface here so
// effects has no I/O or file-format dependency of its own.
type DyadicTable interface {
	At(i, j graphstore.Node) (float64, bool)
}

// DyadicByName resolves a canonical dyadic-effect name to an Effect bound
// to table. attrIndex is unused for dyadic effects (the table closure
// carries the binding instead) and kept at 0 in the returned Effect.
func DyadicByName(name string, table DyadicTable) (Effect, bool) {
	switch name {
	case "EdgeCov":
		return Effect{Name: "EdgeCov", Kind: Dyadic, Fn: edgeCovDelta(table)}, true
	case "GeoDistance":
		return Effect{Name: "GeoDistance", Kind: Dyadic, Fn: geoDistanceDelta(table)}, true
	default:
		return Effect{}, false
	}
}

// edgeCovDelta contributes the raw covariate value for the (i,j) pair, or
// zero when the table has no entry for it.
func edgeCovDelta(table DyadicTable) DeltaFunc {
	return func(_ *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
		v, ok := table.At(i, j)
		if !ok {
			return 0
		}

		return v
	}
}

// geoDistanceDelta contributes the negative of the covariate value, so
// that a positive theta for this effect reads as "shorter distances are
// favored" — the conventional sign convention for a cost-like covariate.
func geoDistanceDelta(table DyadicTable) DeltaFunc {
	return func(_ *graphstore.Graph, i, j graphstore.Node, _ int) float64 {
		v, ok := table.At(i, j)
		if !ok {
			return 0
		}

		return -v
	}
}
