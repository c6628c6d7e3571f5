package driver

import "errors"

// Sentinel errors for driver-level failures not already typed by
// estconfig/ioformat/graphstore (spec §7's config-semantics and I/O
// kinds, resolved only once files are actually loaded).
var (
	// ErrUnknownEffect indicates a structParams/attrParams/dyadicParams/
	// attrInteractionParams entry names an effect no resolver recognizes.
	ErrUnknownEffect = errors.New("driver: unknown effect name")

	// ErrUnresolvedAttribute indicates an effect references an attribute
	// column no loaded attribute table defines.
	ErrUnresolvedAttribute = errors.New("driver: unresolved attribute reference")

	// ErrIFDWithArc indicates a registry resolved for IFD use still
	// contains the Arc effect (estconfig.Parse already rejects this from
	// the raw structParams text; the driver checks the resolved registry
	// too, since a future resolver path should not have to re-derive the
	// same invariant).
	ErrIFDWithArc = errors.New("driver: Arc effect present in registry while IFD sampler is enabled")

	// ErrMissingArgs indicates an effect reference's arity does not match
	// what its resolver expects (e.g. GeoDistance needs exactly two
	// attribute names).
	ErrMissingArgs = errors.New("driver: effect reference has the wrong number of arguments")
)
