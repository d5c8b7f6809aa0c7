// SPDX-License-Identifier: MIT
// Package: gfp/edgelist
//
// reader.go — line-oriented edge list parser.
//
// Contract:
//   • Blank lines and lines whose first non-space byte is '#' or '%' are skipped.
//   • A line containing a comma is split on commas, otherwise on whitespace.
//   • "a," declares vertex a; any other empty endpoint field (",b", "a,,c")
//     is malformed (ErrMalformedLine).
//   • Reader failures are returned as-is, wrapped with the method name.
//
// Complexity: O(L) over the input, one map lookup per endpoint.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gfp/core"
)

// ErrMalformedLine indicates a line that names no usable endpoint.
var ErrMalformedLine = errors.New("edgelist: malformed line")

const (
	methodRead     = "Read"
	methodReadFile = "ReadFile"

	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
)

// Read parses an edge list from r and returns the graph and its labels.
func Read(r io.Reader) (*core.Graph, *Labels, error) {
	labels := newLabels()
	var edges []core.Edge

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		fields, err := splitLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: line %d %q: %w", methodRead, lineNo, line, err)
		}

		u := labels.intern(fields[0])
		if len(fields) == 1 {
			continue
		}
		v := labels.intern(fields[1])
		edges = append(edges, core.Edge{U: u, V: v})
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	g, err := core.New(labels.Len(), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	return g, labels, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, *Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodReadFile, err)
	}
	defer f.Close()

	g, labels, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", methodReadFile, path, err)
	}

	return g, labels, nil
}

// splitLine returns at most the first two endpoint fields of a non-empty line.
func splitLine(line string) ([]string, error) {
	// No comma: plain whitespace-separated tokens, never empty.
	if !strings.Contains(line, ",") {
		fields := strings.Fields(line)
		return fields[:min(len(fields), 2)], nil
	}

	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	// "label," declares an isolated vertex whose label may hold spaces.
	if len(fields) == 2 && fields[0] != "" && fields[1] == "" {
		return fields[:1], nil
	}
	fields = fields[:2]
	for _, f := range fields {
		if f == "" {
			return nil, ErrMalformedLine
		}
	}

	return fields, nil
}
