// SPDX-License-Identifier: MIT
// Package: gfp/edgelist
//
// writer.go — edge list serialization, the inverse of Read.
//
// Contract:
//   • Lines whose labels hold whitespace use the comma form ("New York, Boston",
//     "New York,"), all others the whitespace form ("a b", "a").
//   • Labels Read could not give back are rejected with ErrMalformedLine:
//     empty, surrounded by spaces, containing a comma or a line break, or
//     starting with '#' or '%'.
//   • Nothing is written when a label is rejected.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/gfp/core"
)

const methodWrite = "Write"

// Write emits g as an edge list. Vertices are declared before their first
// edge where needed, so Read restores the same ids and isolated vertices.
// When labels is nil or too short, numeric ids are used.
func Write(w io.Writer, g *core.Graph, labels *Labels) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodWrite, core.ErrInvalidGraph)
	}

	// Numeric ids are always writable; labels are checked up front.
	name := strconv.Itoa
	if labels != nil && labels.Len() >= g.VertexCount() {
		name = labels.Name
		for v := 0; v < g.VertexCount(); v++ {
			if err := checkLabel(name(v)); err != nil {
				return fmt.Errorf("%s: vertex %d %q: %w", methodWrite, v, name(v), err)
			}
		}
	}

	bw := bufio.NewWriter(w)
	// Read numbers labels by first appearance. Declaring every vertex below
	// an edge's larger endpoint first keeps that numbering equal to g's ids.
	next := 0
	declareBelow := func(limit int) {
		for ; next < limit; next++ {
			if label := name(next); hasSpace(label) {
				fmt.Fprintf(bw, "%s,\n", label)
			} else {
				fmt.Fprintln(bw, label)
			}
		}
	}
	for e := range g.AllEdges() {
		hi := max(e.U, e.V)
		declareBelow(hi)
		next = max(next, hi+1)

		// Comma form only when a label would split on whitespace.
		u, v := name(e.U), name(e.V)
		if hasSpace(u) || hasSpace(v) {
			fmt.Fprintf(bw, "%s, %s\n", u, v)
		} else {
			fmt.Fprintf(bw, "%s %s\n", u, v)
		}
	}
	declareBelow(g.VertexCount())

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}

	return nil
}

// checkLabel reports whether label survives a Write/Read round trip.
func checkLabel(label string) error {
	switch {
	case label == "", strings.TrimSpace(label) != label:
		return ErrMalformedLine
	case label[0] == '#', label[0] == '%':
		return ErrMalformedLine
	case strings.ContainsAny(label, ",\n\r"):
		return ErrMalformedLine
	}

	return nil
}

// hasSpace reports whether label would be split by whitespace parsing.
func hasSpace(label string) bool {
	return strings.ContainsFunc(label, unicode.IsSpace)
}
