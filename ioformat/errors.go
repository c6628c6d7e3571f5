package ioformat

import "errors"

// Sentinel errors for malformed input (spec §7's graph-integrity and I/O
// kinds). Callers should match with errors.Is; messages carry an
// "ioformat:" prefix for log grepping.
var (
	// ErrMalformedPajek indicates a Pajek file missing its *Vertices or
	// *Arcs header, or an arc line that isn't two integers.
	ErrMalformedPajek = errors.New("ioformat: malformed Pajek file")

	// ErrSelfLoopInFile indicates a Pajek arc line named i==j.
	ErrSelfLoopInFile = errors.New("ioformat: self-loop in Pajek arc list")

	// ErrRowCount indicates an attribute/zone file's data row count does
	// not match the expected node count.
	ErrRowCount = errors.New("ioformat: attribute file row count does not match node count")

	// ErrColumnCount indicates a data row with a different field count
	// than the header line.
	ErrColumnCount = errors.New("ioformat: attribute file row has the wrong number of columns")

	// ErrBadValue indicates a cell that could not be parsed as its
	// column's expected type.
	ErrBadValue = errors.New("ioformat: unparsable attribute value")
)
