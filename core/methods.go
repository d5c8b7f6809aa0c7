// SPDX-License-Identifier: MIT
// Package: gfp/core
//
// methods.go — read-only queries over an immutable Graph.
//
// Out-of-range policy:
//   • Queries never panic on a bad vertex id; they return the zero value
//     (Degree 0, empty sequence, nil slice, false). Validation happens once,
//     in New, which is where malformed input can enter.

package core

import (
	"iter"
	"slices"
)

// VertexCount returns N, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges passed to New, counting every
// parallel edge and self-loop once.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// valid reports whether v is a vertex id of g.
func (g *Graph) valid(v int) bool { return v >= 0 && v < g.n }

// Degree returns the total degree of v: the number of edge endpoints at v.
// Parallel edges count once per copy and a self-loop counts twice.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.valid(v) {
		return 0
	}

	return g.offsets[v+1] - g.offsets[v]
}

// Neighbors returns a lazy sequence of the neighbors of v with multiplicity.
// The number of yielded ids equals Degree(v); a self-loop yields v twice.
// The sequence may be ranged over any number of times. Order is unspecified.
//
// Complexity: O(deg(v)) per full iteration, O(1) to create.
func (g *Graph) Neighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if !g.valid(v) {
			return
		}
		for _, w := range g.adj[g.offsets[v]:g.offsets[v+1]] {
			if !yield(w) {
				return
			}
		}
	}
}

// SimpleNeighbors returns the unique neighbors of v excluding v itself,
// sorted ascending. The returned slice aliases internal storage and MUST be
// treated as read-only.
//
// Complexity: O(1).
func (g *Graph) SimpleNeighbors(v int) []int {
	if !g.valid(v) {
		return nil
	}

	return g.simpleAdj[g.simpleOffsets[v]:g.simpleOffsets[v+1]:g.simpleOffsets[v+1]]
}

// SimpleDegree returns len(SimpleNeighbors(v)).
func (g *Graph) SimpleDegree(v int) int {
	if !g.valid(v) {
		return 0
	}

	return g.simpleOffsets[v+1] - g.simpleOffsets[v]
}

// HasEdge reports whether at least one edge joins u and v.
// HasEdge(v, v) is true iff v carries a self-loop.
//
// Complexity: O(log deg(u)) for u != v, O(deg(v)) for loops.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.valid(u) || !g.valid(v) {
		return false
	}
	if u == v {
		return slices.Contains(g.adj[g.offsets[u]:g.offsets[u+1]], u)
	}
	_, found := slices.BinarySearch(g.SimpleNeighbors(u), v)

	return found
}

// Edges returns a copy of the edge list in construction order.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}

// AllEdges returns a lazy sequence over the edge list in construction order
// without copying it.
//
// Complexity: O(E) per full iteration, O(1) to create.
func (g *Graph) AllEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}
