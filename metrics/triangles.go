// SPDX-License-Identifier: MIT
// Package: gfp/metrics
//
// triangles.go — triangle counting over the simple projection.
//
// Two independent counters exist on purpose:
//   • vertexTriangles: per-vertex counts via sorted-list intersection, the
//     input to local and global clustering.
//   • CountTriangles: direct u<v<w enumeration, used to verify the
//     clustering-derived estimate in GlobalMetrics.TriangleCount.

package metrics

import (
	"context"
	"sort"

	"github.com/katalvlaran/gfp/core"
)

// intersectCount returns |a ∩ b| for ascending slices.
func intersectCount(a, b []int) int {
	var i, j, c int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			c++
			i++
			j++
		}
	}

	return c
}

// vertexTriangles returns, for every v, the number of edges among the simple
// neighbors of v: t(v) = ½ Σ_{u∈N(v)} |N(v) ∩ N(u)|.
func vertexTriangles(ctx context.Context, g *core.Graph, workers int) ([]int, error) {
	tri := make([]int, g.VertexCount())
	err := forEachChunk(ctx, len(tri), workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			nv := g.SimpleNeighbors(v)
			closed := 0
			for _, u := range nv {
				closed += intersectCount(nv, g.SimpleNeighbors(u))
			}
			tri[v] = closed / 2
		}
	})
	if err != nil {
		return nil, err
	}

	return tri, nil
}

// connectedTriples returns C(k,2) for a vertex with k simple neighbors.
func connectedTriples(k int) float64 {
	return float64(k) * float64(k-1) / 2
}

// CountTriangles counts triangles directly: every u<v<w with all three pairs
// adjacent is counted once. Loops and parallel edges are ignored.
//
// Complexity: O(Σ_{(u,v)∈E} (k_u + k_v)).
func CountTriangles(g *core.Graph) int {
	if g == nil {
		return 0
	}
	total := 0
	for u := 0; u < g.VertexCount(); u++ {
		nu := g.SimpleNeighbors(u)
		for _, v := range nu {
			if v <= u {
				continue
			}
			// Count w > v adjacent to both u and v.
			nv := g.SimpleNeighbors(v)
			i, j := sort.SearchInts(nu, v+1), sort.SearchInts(nv, v+1)
			total += intersectCount(nu[i:], nv[j:])
		}
	}

	return total
}
