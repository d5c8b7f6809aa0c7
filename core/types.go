// SPDX-License-Identifier: MIT
// Package: gfp/core
//
// types.go — Graph, Edge, sentinel errors and the New constructor.
//
// Contract:
//   • New validates every endpoint before allocating adjacency (fail fast).
//   • The multigraph view keeps multiplicity: a parallel edge appears once per
//     copy, a self-loop puts v into its own list twice.
//   • The simple view drops loops and duplicates and is sorted ascending.
//   • Both views are symmetric: u lists v exactly as often as v lists u.
//
// Complexity:
//   • Time: O(V + E) counting pass + O(Σ deg·log deg) for the simple view.
//   • Space: O(V + E) for both CSR arrays.

package core

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidGraph indicates malformed input to New: a negative vertex count or
// an edge endpoint outside [0, vertexCount).
var ErrInvalidGraph = errors.New("core: invalid graph")

// methodNew tags construction errors.
const methodNew = "New"

// Edge is an undirected edge between vertex ids U and V.
// U == V denotes a self-loop.
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected multigraph over vertex ids 0..N-1.
//
// offsets/adj hold the multigraph adjacency: the neighbors of v are
// adj[offsets[v]:offsets[v+1]].
// simpleOffsets/simpleAdj hold the simple projection in the same layout.
type Graph struct {
	n     int
	edges []Edge

	offsets []int
	adj     []int

	simpleOffsets []int
	simpleAdj     []int
}

// New builds a Graph with vertexCount vertices and the given edges.
//
// Implementation:
//   - Stage 1: Validate vertexCount and every endpoint (ErrInvalidGraph).
//   - Stage 2: Count endpoint occurrences per vertex and prefix-sum into offsets.
//   - Stage 3: Scatter endpoints into adj (loops contribute v twice to v).
//   - Stage 4: Derive the simple projection by sort + dedup per vertex.
//
// Returns:
//   - *Graph: immutable graph; edges is copied so the caller may reuse its slice.
//   - error: wraps ErrInvalidGraph with the offending edge index.
func New(vertexCount int, edges []Edge) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%s: vertexCount=%d < 0: %w", methodNew, vertexCount, ErrInvalidGraph)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= vertexCount || e.V < 0 || e.V >= vertexCount {
			return nil, fmt.Errorf("%s: edge %d (%d,%d) outside [0,%d): %w",
				methodNew, i, e.U, e.V, vertexCount, ErrInvalidGraph)
		}
	}

	g := &Graph{
		n:       vertexCount,
		edges:   slices.Clone(edges),
		offsets: make([]int, vertexCount+1),
	}

	// Stage 2: each edge adds one slot to both endpoints (two to v for a loop).
	for _, e := range g.edges {
		g.offsets[e.U+1]++
		g.offsets[e.V+1]++
	}
	for v := 0; v < vertexCount; v++ {
		g.offsets[v+1] += g.offsets[v]
	}

	// Stage 3: scatter with a moving cursor per vertex.
	g.adj = make([]int, g.offsets[vertexCount])
	cursor := slices.Clone(g.offsets[:vertexCount])
	for _, e := range g.edges {
		g.adj[cursor[e.U]] = e.V
		cursor[e.U]++
		g.adj[cursor[e.V]] = e.U
		cursor[e.V]++
	}

	g.buildSimple()

	return g, nil
}

// buildSimple derives the loop-free, duplicate-free, sorted adjacency.
func (g *Graph) buildSimple() {
	g.simpleOffsets = make([]int, g.n+1)
	g.simpleAdj = make([]int, 0, len(g.adj))

	buf := make([]int, 0)
	for v := 0; v < g.n; v++ {
		buf = append(buf[:0], g.adj[g.offsets[v]:g.offsets[v+1]]...)
		slices.Sort(buf)
		buf = slices.Compact(buf)
		for _, w := range buf {
			if w != v {
				g.simpleAdj = append(g.simpleAdj, w)
			}
		}
		g.simpleOffsets[v+1] = len(g.simpleAdj)
	}
}
