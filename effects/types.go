package effects

import "github.com/katalvlaran/ergmee/graphstore"

// Kind discriminates what extra input a DeltaFunc needs to resolve its
// index argument (spec §4.2: "attr_index refers into the graph's
// attribute table").
type Kind int

const (
	// Struct effects take no extra index; Δ depends only on (g,i,j).
	Struct Kind = iota
	// Attr effects resolve AttrIndex into graphstore.Attributes.
	Attr
	// Dyadic effects ignore AttrIndex: their DeltaFunc closes over the
	// DyadicTable passed to DyadicByName (built by the driver).
	Dyadic
	// AttrInteraction effects combine the attribute values of both
	// endpoints (the product attr[i]*attr[j]).
	AttrInteraction
)

func (k Kind) String() string {
	switch k {
	case Struct:
		return "Struct"
	case Attr:
		return "Attr"
	case Dyadic:
		return "Dyadic"
	case AttrInteraction:
		return "AttrInteraction"
	default:
		return "Unknown"
	}
}

// DeltaFunc computes the change in a sufficient statistic if arc i->j were
// added to g's current state (spec §4.2). Implementations must be pure:
// no mutation of g, and no I/O.
type DeltaFunc func(g *graphstore.Graph, i, j graphstore.Node, attrIndex int) float64

// Effect is one entry in the registry: a name, a kind, the Δ function, and
// — for Attr/Dyadic/AttrInteraction kinds — the attribute/covariate index
// it is bound to (spec §4.2's "(name, kind, fn, attr_index?)").
type Effect struct {
	Name      string
	Kind      Kind
	Fn        DeltaFunc
	AttrIndex int // unused (0) for Struct effects
}

// Delta evaluates this effect's change statistic for arc i->j.
func (e Effect) Delta(g *graphstore.Graph, i, j graphstore.Node) float64 {
	return e.Fn(g, i, j, e.AttrIndex)
}
