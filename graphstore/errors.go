package graphstore

import "errors"

// Sentinel errors for graph-store operations. Callers should match with
// errors.Is; messages carry a "graphstore:" prefix for log grepping.
var (
	// ErrSelfLoop indicates an arc i->i was requested; self-loops are
	// outside the ERGM directed-graph model (spec §3).
	ErrSelfLoop = errors.New("graphstore: self-loop not allowed")

	// ErrNodeRange indicates a node index outside [0,N).
	ErrNodeRange = errors.New("graphstore: node index out of range")

	// ErrArcExists indicates InsertArc was called on an existing arc.
	ErrArcExists = errors.New("graphstore: arc already exists")

	// ErrArcMissing indicates RemoveArc was called on a non-existent arc.
	ErrArcMissing = errors.New("graphstore: arc does not exist")

	// ErrAttrKind indicates an attribute lookup used the wrong accessor
	// (e.g. Continuous() on a Categorical attribute).
	ErrAttrKind = errors.New("graphstore: attribute kind mismatch")

	// ErrAttrRange indicates an attribute index outside the loaded table.
	ErrAttrRange = errors.New("graphstore: attribute index out of range")

	// ErrNoSnowball indicates a snowball-only operation was called on a
	// Graph with no zone data loaded.
	ErrNoSnowball = errors.New("graphstore: no snowball zone data loaded")

	// ErrZoneRange indicates a zone index outside [0,Z].
	ErrZoneRange = errors.New("graphstore: zone index out of range")
)
