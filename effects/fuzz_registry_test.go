package effects_test

import (
	"math"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/katalvlaran/ergmee/effects"
	"github.com/katalvlaran/ergmee/graphstore"
)

// fullRegistry builds one registry exercising every structural, attr, and
// dyadic effect against a graph with continuous, categorical, and dyadic
// covariates attached, all keyed off the same node set.
func fullRegistry(tb testing.TB, n int) (*effects.Registry, *graphstore.Graph) {
	tb.Helper()
	g, err := graphstore.New(n)
	if err != nil {
		tb.Skip(err)
	}

	cont := make([]float64, n)
	cat := make([]int32, n)
	for v := 0; v < n; v++ {
		cont[v] = float64(v) * 0.37
		cat[v] = int32(v % 3)
	}
	attrs := graphstore.NewAttributes(n)
	attrs.AddContinuous("x", cont)
	attrs.AddCategorical("c", cat)
	g.AttachAttributes(attrs)

	contIdx, _ := g.Attributes().ContinuousIndex("x")
	catIdx, _ := g.Attributes().CategoricalIndex("c")

	table := make(fakeTable)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				table[[2]graphstore.Node{graphstore.Node(i), graphstore.Node(j)}] = float64(i+j) * 0.11
			}
		}
	}

	var structList, attrList, dyadicList []effects.Effect
	for _, name := range []string{"Arc", "Reciprocity", "TransitiveTriplet", "CyclicTriplet", "AltKStar", "AltKTriangle", "AltKTwoPath"} {
		e, ok := effects.StructuralByName(name, 2.0)
		if !ok {
			tb.Fatalf("missing structural effect %q", name)
		}
		structList = append(structList, e)
	}
	for _, name := range []string{"Sender", "Receiver", "Match", "Mismatch"} {
		attrIdx := contIdx
		if name == "Match" || name == "Mismatch" {
			attrIdx = catIdx
		}
		e, ok := effects.AttrByName(name, attrIdx)
		if !ok {
			tb.Fatalf("missing attr effect %q", name)
		}
		attrList = append(attrList, e)
	}
	for _, name := range []string{"EdgeCov", "GeoDistance"} {
		e, ok := effects.DyadicByName(name, table)
		if !ok {
			tb.Fatalf("missing dyadic effect %q", name)
		}
		dyadicList = append(dyadicList, e)
	}

	reg, err := effects.NewRegistry(structList, attrList, dyadicList)
	if err != nil {
		tb.Fatal(err)
	}

	return reg, g
}

// globalStatFor returns the whole-graph recount for the structural
// effects whose statistic is cascade-free (see
// TestDeltaMatchesGlobalStatistic's doc comment in structural_test.go),
// or nil for every effect that isn't one of those four — callers skip the
// property-2 check for a nil func and rely on the locality check instead.
func globalStatFor(name string) func(*graphstore.Graph) float64 {
	switch name {
	case "Arc":
		return globalArcCount
	case "Reciprocity":
		return globalReciprocityCount
	case "AltKStar":
		return func(g *graphstore.Graph) float64 { return globalAltKStar(g, 2.0) }
	case "AltKTwoPath":
		return func(g *graphstore.Graph) float64 { return globalAltKTwoPath(g, 2.0) }
	default:
		return nil
	}
}

// FuzzRegistry_LocalityAndGlobalStatistic feeds arbitrary byte streams into a
// TypeProvider to build a small sparse graph and two disjoint dyads (i,j)
// and (a,b), then checks spec §8 property 2 two ways across the full
// effect registry: a remote toggle at (a,b) must leave every effect's Δ
// at (i,j) unchanged (locality), and for the four cascade-free structural
// effects, toggling (i,j) itself must change the whole-graph statistic by
// exactly Δ, mirroring effects_test's rapid-based TestLocality and
// TestDeltaMatchesGlobalStatistic but driven by byte-stream mutation
// instead of structured generation.
func FuzzRegistry_LocalityAndGlobalStatistic(f *testing.F) {
	f.Add([]byte{8, 1, 2, 9, 10, 0x55, 0xAA, 0x12, 0x34})
	f.Add([]byte{12, 3, 4, 3, 11, 0xFF, 0x00, 0x77})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		nByte, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		n := 8 + int(nByte%8) // n in [8,15]

		reg, g := fullRegistry(t, n)

		arcByte, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		arcCount := int(arcByte) % (n * 2)
		for k := 0; k < arcCount; k++ {
			ib, err := tp.GetByte()
			if err != nil {
				break
			}
			jb, err := tp.GetByte()
			if err != nil {
				break
			}
			i, j := graphstore.Node(int(ib)%n), graphstore.Node(int(jb)%n)
			if i == j || g.IsArc(i, j) {
				continue
			}
			_ = g.InsertArc(i, j)
		}

		ib, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		jb, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		i, j := graphstore.Node(int(ib)%n), graphstore.Node(int(jb)%n)
		if i == j {
			t.Skip("degenerate dyad")
		}

		ab, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		bb, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		a, b := graphstore.Node(int(ab)%n), graphstore.Node(int(bb)%n)
		if a == b || (a == i && b == j) || (a == j && b == i) {
			t.Skip("degenerate remote dyad")
		}

		for _, e := range reg.InOrder() {
			before := e.Delta(g, i, j)
			if math.IsNaN(before) {
				continue
			}

			toggled := g.IsArc(a, b)
			if toggled {
				_ = g.RemoveArc(a, b)
			} else {
				_ = g.InsertArc(a, b)
			}
			after := e.Delta(g, i, j)
			if toggled {
				_ = g.InsertArc(a, b)
			} else {
				_ = g.RemoveArc(a, b)
			}

			if !g.IsArcIgnoreDir(a, i) && !g.IsArcIgnoreDir(a, j) && !g.IsArcIgnoreDir(b, i) && !g.IsArcIgnoreDir(b, j) && e.Name != "Arc" {
				if math.Abs(before-after) > 1e-9 {
					t.Fatalf("locality violated: effect=%s before=%v after=%v", e.Name, before, after)
				}
			}

			global := globalStatFor(e.Name)
			if global == nil || g.IsArc(i, j) {
				// Delta is insert-shaped (spec §4.2); only meaningful to
				// check against a real add when the dyad starts absent.
				continue
			}

			statBefore := global(g)
			delta := e.Delta(g, i, j)
			_ = g.InsertArc(i, j)
			statAfter := global(g)
			_ = g.RemoveArc(i, j)

			if want := statAfter - statBefore; math.Abs(delta-want) > 1e-9 {
				t.Fatalf("global statistic mismatch: effect=%s delta=%v want=%v", e.Name, delta, want)
			}
		}
	})
}
