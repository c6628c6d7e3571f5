// File: pajek.go
// Role: the Pajek arc-list format (spec §6): `*Vertices N`, `*Arcs`, then
// 1-based `i j` pairs, self-loops rejected.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmee/graphstore"
)

// ReadPajek parses a Pajek arc-list file into a new Graph.
func ReadPajek(r io.Reader) (*graphstore.Graph, error) {
	scanner := bufio.NewScanner(r)

	n, err := readVerticesHeader(scanner)
	if err != nil {
		return nil, err
	}
	if err := expectArcsHeader(scanner); err != nil {
		return nil, err
	}

	g, err := graphstore.New(n)
	if err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		i, j, err := parseArcLine(line)
		if err != nil {
			return nil, err
		}
		if err := g.InsertArc(i, j); err != nil {
			return nil, fmt.Errorf("ioformat: arc (%d,%d): %w", i+1, j+1, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

func readVerticesHeader(scanner *bufio.Scanner) (int, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "*Vertices") {
			return 0, ErrMalformedPajek
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return 0, ErrMalformedPajek
		}

		return n, nil
	}

	return 0, ErrMalformedPajek
}

func expectArcsHeader(scanner *bufio.Scanner) error {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.EqualFold(line, "*Arcs") {
			return ErrMalformedPajek
		}

		return nil
	}

	return ErrMalformedPajek
}

func parseArcLine(line string) (graphstore.Node, graphstore.Node, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformedPajek
	}
	oneI, err1 := strconv.Atoi(fields[0])
	oneJ, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedPajek
	}
	if oneI == oneJ {
		return 0, 0, ErrSelfLoopInFile
	}

	return graphstore.Node(oneI - 1), graphstore.Node(oneJ - 1), nil
}

// WritePajek writes g as a Pajek arc-list file (spec §4.7's "optionally
// write the final graph out as Pajek").
func WritePajek(w io.Writer, g *graphstore.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "*Vertices %d\n*Arcs\n", g.N()); err != nil {
		return err
	}
	for i := 0; i < g.N(); i++ {
		for _, j := range g.Out(graphstore.Node(i)) {
			if _, err := fmt.Fprintf(bw, "%d %d\n", i+1, int(j)+1); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
