package sampler

// Params bundles the per-sweep flags spec §4.3/§4.4 take as input.
type Params struct {
	// M is the number of proposals in one sweep ("m" in spec §4.3).
	M int
	// PerformMove, if true, commits accepted moves to the graph; if
	// false, the graph is restored after every proposal regardless of
	// the accept/reject outcome (Algorithm S's exploratory mode).
	PerformMove bool
	// UseConditional restricts dyad selection to the snowball's inner
	// nodes and enforces the zone-adjacency and last-connection
	// constraints (spec §4.3's "Conditional (snowball) mode").
	UseConditional bool
	// ForbidReciprocity rejects add-proposals that would create a
	// mutual dyad. Spec §4.3 requires this to be false whenever
	// UseConditional is true.
	ForbidReciprocity bool
}

// Result is one sweep's output for the Basic sampler (spec §4.3): the
// acceptance rate over the sweep and the summed change statistics of
// every accepted add and delete move, in registry order.
type Result struct {
	AddDelta       []float64
	DelDelta       []float64
	AcceptanceRate float64
}

// newResult allocates a zeroed Result sized for p effects.
func newResult(p int) Result {
	return Result{
		AddDelta: make([]float64, p),
		DelDelta: make([]float64, p),
	}
}
