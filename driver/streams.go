// File: streams.go
// Role: the theta/dzA output streams (spec §4.7/§6): space-separated
// numeric rows, one per emitted iteration, with a header naming `t`,
// the Arc column (IFD only), the registry's effect names in order, and
// `AcceptanceRate`.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ergmee/graphstore"
)

// streamWriter writes one output stream (theta or dzA). Both share the
// same header/column shape (spec §4.7), so one type serves both; they
// differ only in how the IFD auxiliary slot becomes the reported Arc
// column (see writeRow).
type streamWriter struct {
	w     *bufio.Writer
	names []string // registry effect names, struct/attr/dyadic order
	ifd   bool
	isDzA bool              // true for the dzA stream, false for theta
	g     *graphstore.Graph // needed to reconstruct the Arc column for IFD theta rows
}

// newStreamWriter wraps w and writes the header line immediately. isDzA
// selects the dzA reporting rule for the IFD Arc column (spec §4.7);
// pass false for the theta stream.
func newStreamWriter(w io.Writer, names []string, ifd bool, isDzA bool, g *graphstore.Graph) (*streamWriter, error) {
	sw := &streamWriter{w: bufio.NewWriter(w), names: names, ifd: ifd, isDzA: isDzA, g: g}
	if err := sw.writeHeader(); err != nil {
		return nil, err
	}

	return sw, nil
}

func (sw *streamWriter) writeHeader() error {
	if _, err := sw.w.WriteString("t"); err != nil {
		return err
	}
	if sw.ifd {
		if _, err := sw.w.WriteString(" Arc"); err != nil {
			return err
		}
	}
	for _, name := range sw.names {
		if _, err := fmt.Fprintf(sw.w, " %s", name); err != nil {
			return err
		}
	}
	_, err := sw.w.WriteString(" AcceptanceRate\n")

	return err
}

// writeRow writes one data row. values is the full θ (or dzA) vector in
// estimate's internal shape: len(names) slots, plus one trailing
// ifd_aux slot when sw.ifd is true. For the theta stream, the reported
// Arc column is `ifd_aux - ArcCorrection(g)` (spec §4.4): the auxiliary
// parameter isn't itself the arc parameter, it differs from it by the
// log-ratio correction that keeps the density fixed, so reconstructing
// the reported θ_Arc means undoing that correction. For the dzA stream
// the auxiliary slot already holds an accumulated arc-count delta
// (addΔ−delΔ), not a parameter, so no such correction applies; the raw
// accumulator is the reported Arc column.
func (sw *streamWriter) writeRow(t int, values []float64, acceptanceRate float64) error {
	if _, err := fmt.Fprintf(sw.w, "%d", t); err != nil {
		return err
	}

	core := values
	if sw.ifd {
		aux := values[len(values)-1]
		core = values[:len(values)-1]
		arcVal := aux
		if !sw.isDzA {
			arcVal = aux - sw.g.ArcCorrection()
		}
		if _, err := fmt.Fprintf(sw.w, " %s", formatFloat(arcVal)); err != nil {
			return err
		}
	}
	for _, v := range core {
		if _, err := fmt.Fprintf(sw.w, " %s", formatFloat(v)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(sw.w, " %s\n", formatFloat(acceptanceRate))

	return err
}

func (sw *streamWriter) Flush() error { return sw.w.Flush() }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
