// File: attributes.go
// Role: whitespace-delimited attribute and zone file loaders (spec §6):
// a header line naming columns, then one row per node in order 1..N.
package ioformat

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmee/graphstore"
)

// readTable scans a header line plus n data rows, each split on
// whitespace, and returns the column names and the raw string cells
// (rows[row][col]). Every row must have the same field count as the
// header.
func readTable(r io.Reader, n int) (names []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, nil, ErrRowCount
	}
	names = strings.Fields(scanner.Text())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(names) {
			return nil, nil, ErrColumnCount
		}
		rows = append(rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(rows) != n {
		return nil, nil, ErrRowCount
	}

	return names, rows, nil
}

// LoadBinaryAttributes reads a 0/1-valued attribute table and registers
// every column on attrs.
func LoadBinaryAttributes(r io.Reader, attrs *graphstore.Attributes, n int) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		vals := make([]uint8, n)
		for row := 0; row < n; row++ {
			v, err := strconv.ParseUint(rows[row][col], 10, 8)
			if err != nil || v > 1 {
				return ErrBadValue
			}
			vals[row] = uint8(v)
		}
		attrs.AddBinary(name, vals)
	}

	return nil
}

// LoadCategoricalAttributes reads a categorical attribute table; a
// negative value is the missing sentinel (graphstore.CategoricalMissing,
// spec §6).
func LoadCategoricalAttributes(r io.Reader, attrs *graphstore.Attributes, n int) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		vals := make([]int32, n)
		for row := 0; row < n; row++ {
			v, err := strconv.ParseInt(rows[row][col], 10, 32)
			if err != nil {
				return ErrBadValue
			}
			if v < 0 {
				vals[row] = graphstore.CategoricalMissing
			} else {
				vals[row] = int32(v)
			}
		}
		attrs.AddCategorical(name, vals)
	}

	return nil
}

// LoadContinuousAttributes reads a continuous attribute table; the
// literal string "NA" is the missing sentinel, stored as NaN (spec §6).
func LoadContinuousAttributes(r io.Reader, attrs *graphstore.Attributes, n int) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		vals := make([]float64, n)
		for row := 0; row < n; row++ {
			cell := rows[row][col]
			if strings.EqualFold(cell, "NA") {
				vals[row] = math.NaN()

				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return ErrBadValue
			}
			vals[row] = v
		}
		attrs.AddContinuous(name, vals)
	}

	return nil
}

// LoadSetAttributes reads a set-valued attribute table: each cell is a
// comma-separated list of small non-negative integers (the set's
// members), or "-" for the empty set, packed into a bitset.
func LoadSetAttributes(r io.Reader, attrs *graphstore.Attributes, n int) error {
	names, rows, err := readTable(r, n)
	if err != nil {
		return err
	}
	for col, name := range names {
		vals := make([]uint64, n)
		for row := 0; row < n; row++ {
			cell := rows[row][col]
			if cell == "-" {
				continue
			}
			var bits uint64
			for _, member := range strings.Split(cell, ",") {
				idx, err := strconv.Atoi(member)
				if err != nil || idx < 0 || idx >= 64 {
					return ErrBadValue
				}
				bits |= 1 << uint(idx)
			}
			vals[row] = bits
		}
		attrs.AddSet(name, vals)
	}

	return nil
}

// LoadZones reads a single-column zone-index file (spec §6's zoneFile)
// and returns the per-node zone slice and the maximum zone index Z.
func LoadZones(r io.Reader, n int) (zones []int32, zMax int, err error) {
	names, rows, err := readTable(r, n)
	if err != nil {
		return nil, 0, err
	}
	if len(names) != 1 {
		return nil, 0, ErrColumnCount
	}
	zones = make([]int32, n)
	for row := 0; row < n; row++ {
		v, err := strconv.Atoi(rows[row][0])
		if err != nil || v < 0 {
			return nil, 0, ErrBadValue
		}
		zones[row] = int32(v)
		if v > zMax {
			zMax = v
		}
	}

	return zones, zMax, nil
}
