// Package ioformat reads and writes the file formats spec §6 names: the
// Pajek arc-list graph format (input and simulated-network output) and
// the whitespace-delimited attribute/zone files.
//
// Grounded on spec §6's format definitions directly; the sentinel-error
// style for malformed input follows graphstore's own convention. No pack
// library parses Pajek or this attribute-table grammar, so this package
// is stdlib-only (bufio, strconv) by necessity — see DESIGN.md.
package ioformat
