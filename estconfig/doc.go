// Package estconfig parses the estimation task configuration format (spec
// §6): `key = value` lines, case-insensitive keys, `#` line comments, and
// set-valued keys (`structParams = {Arc, Reciprocity, ...}`) naming the
// effects a task resolves into its registry.
//
// Parse only handles what is knowable from the config text alone —
// syntax errors and the IFD-vs-Arc semantic check (spec §4.4/§7). Full
// effect-name and attribute-reference resolution happens in the driver,
// once the attribute and covariate files named here are actually loaded
// (spec §4.7): resolving "Sender(income)" to a registry Effect requires
// graphstore.Attributes to exist first, which Parse alone cannot provide.
//
// Hand-rolled bufio.Scanner state machine in lvlath's manner
// (builder/config.go's functional-option assembly, matrix/validators.go's
// validate-then-construct shape) — no pack parsing library models this
// bespoke key=value-plus-set-literal grammar without translating the
// format away from spec §6, so this component is stdlib-only by
// necessity (see DESIGN.md).
package estconfig
