// File: attr.go
// Role: nodal-attribute change statistics (spec §4.2's Attr kind). Each
// resolves its AttrIndex into graphstore.Attributes; a missing value
// contributes zero rather than erroring, since attribute coverage is
// validated once at load time (ioformat), not per-toggle.
package effects

import "github.com/katalvlaran/ergmee/graphstore"

// AttrByName resolves a canonical attribute-effect name to an Effect bound
// to attrIndex. Sender/Receiver/Interaction read attrIndex from the
// continuous table and Match/Mismatch from the categorical table;
// BinaryAttrByName is the binary-table counterpart.
func AttrByName(name string, attrIndex int) (Effect, bool) {
	switch name {
	case "Sender":
		return Effect{Name: "Sender", Kind: Attr, Fn: senderDelta, AttrIndex: attrIndex}, true
	case "Receiver":
		return Effect{Name: "Receiver", Kind: Attr, Fn: receiverDelta, AttrIndex: attrIndex}, true
	case "Match":
		return Effect{Name: "Match", Kind: Attr, Fn: matchDelta, AttrIndex: attrIndex}, true
	case "Mismatch":
		return Effect{Name: "Mismatch", Kind: Attr, Fn: mismatchDelta, AttrIndex: attrIndex}, true
	case "Interaction":
		return Effect{Name: "Interaction", Kind: AttrInteraction, Fn: interactionDelta, AttrIndex: attrIndex}, true
	default:
		return Effect{}, false
	}
}

// BinaryAttrByName is AttrByName's counterpart for attributes loaded into
// the binary table (spec §6's binattrFile): Sender(bin_attr_name) and
// Receiver(bin_attr_name) sum the 0/1 value instead of a continuous one,
// and Interaction multiplies two binary endpoints. Match/Mismatch have no
// binary form — they already require a categorical table.
func BinaryAttrByName(name string, attrIndex int) (Effect, bool) {
	switch name {
	case "Sender":
		return Effect{Name: "Sender", Kind: Attr, Fn: senderBinaryDelta, AttrIndex: attrIndex}, true
	case "Receiver":
		return Effect{Name: "Receiver", Kind: Attr, Fn: receiverBinaryDelta, AttrIndex: attrIndex}, true
	case "Interaction":
		return Effect{Name: "Interaction", Kind: AttrInteraction, Fn: interactionBinaryDelta, AttrIndex: attrIndex}, true
	default:
		return Effect{}, false
	}
}

// senderDelta sums the continuous attribute value of the arc's source for
// every out-arc it sends; adding i->j contributes attr[i] regardless of j.
func senderDelta(g *graphstore.Graph, i, _ graphstore.Node, attrIndex int) float64 {
	v, err := g.Attributes().Continuous(attrIndex, i)
	if err != nil || isMissing(v) {
		return 0
	}

	return v
}

// receiverDelta is Sender's mirror: sums the continuous attribute value of
// every arc's target.
func receiverDelta(g *graphstore.Graph, _, j graphstore.Node, attrIndex int) float64 {
	v, err := g.Attributes().Continuous(attrIndex, j)
	if err != nil || isMissing(v) {
		return 0
	}

	return v
}

// matchDelta contributes 1 when i and j share the same categorical value;
// a common homophily effect.
func matchDelta(g *graphstore.Graph, i, j graphstore.Node, attrIndex int) float64 {
	ci, erri := g.Attributes().Categorical(attrIndex, i)
	cj, errj := g.Attributes().Categorical(attrIndex, j)
	if erri != nil || errj != nil || ci == graphstore.CategoricalMissing || cj == graphstore.CategoricalMissing {
		return 0
	}
	if ci == cj {
		return 1
	}

	return 0
}

// mismatchDelta is Match's complement: contributes 1 when the categories
// differ, modeling heterophily.
func mismatchDelta(g *graphstore.Graph, i, j graphstore.Node, attrIndex int) float64 {
	ci, erri := g.Attributes().Categorical(attrIndex, i)
	cj, errj := g.Attributes().Categorical(attrIndex, j)
	if erri != nil || errj != nil || ci == graphstore.CategoricalMissing || cj == graphstore.CategoricalMissing {
		return 0
	}
	if ci != cj {
		return 1
	}

	return 0
}

// interactionDelta contributes the product of i and j's continuous
// attribute values, capturing an attribute-by-attribute interaction term
// rather than a pure topology effect.
func interactionDelta(g *graphstore.Graph, i, j graphstore.Node, attrIndex int) float64 {
	vi, erri := g.Attributes().Continuous(attrIndex, i)
	vj, errj := g.Attributes().Continuous(attrIndex, j)
	if erri != nil || errj != nil || isMissing(vi) || isMissing(vj) {
		return 0
	}

	return vi * vj
}

func isMissing(v float64) bool {
	return v != v // NaN != NaN
}

// senderBinaryDelta is senderDelta read from the binary table.
func senderBinaryDelta(g *graphstore.Graph, i, _ graphstore.Node, attrIndex int) float64 {
	v, err := g.Attributes().Binary(attrIndex, i)
	if err != nil {
		return 0
	}

	return float64(v)
}

// receiverBinaryDelta is receiverDelta read from the binary table.
func receiverBinaryDelta(g *graphstore.Graph, _, j graphstore.Node, attrIndex int) float64 {
	v, err := g.Attributes().Binary(attrIndex, j)
	if err != nil {
		return 0
	}

	return float64(v)
}

// interactionBinaryDelta is interactionDelta read from the binary table.
func interactionBinaryDelta(g *graphstore.Graph, i, j graphstore.Node, attrIndex int) float64 {
	vi, erri := g.Attributes().Binary(attrIndex, i)
	vj, errj := g.Attributes().Binary(attrIndex, j)
	if erri != nil || errj != nil {
		return 0
	}

	return float64(vi) * float64(vj)
}
