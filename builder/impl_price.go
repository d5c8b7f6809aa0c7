// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_price.go — implementation of PriceNetwork(n, m) constructor.
//
// Canonical model (undirected Price / preferential attachment):
//   • Vertex 1 attaches to vertex 0 (seed edge).
//   • Each later vertex v attaches to min(m, v) distinct earlier vertices,
//     each chosen with probability proportional to its current degree.
//   • Degree-proportional sampling draws uniformly from the list of edge
//     endpoints; duplicates are redrawn so the graph stays simple.
//
// Contract:
//   • n ≥ 2 and m ≥ 1 (else ErrTooFewVertices).
//   • cfg.rng required (else ErrNeedRandSource).
//   • Edge count is 1 + Σ_{v=2}^{n-1} min(m, v).
//
// Complexity: expected O(n·m) draws; O(n·m) space for the endpoint list.

package builder

import "fmt"

// PriceNetwork returns a Constructor that grows a scale-free network of n
// vertices with m new edges per vertex.
func PriceNetwork(n, m int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < MinPriceNodes || m < 1 {
			return fmt.Errorf("%s: n=%d (min %d), m=%d (min 1): %w",
				methodPriceNetwork, n, MinPriceNodes, m, ErrTooFewVertices)
		}
		// Sampling needs a seeded source for reproducible output.
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPriceNetwork, ErrNeedRandSource)
		}

		// Seed edge 0-1 so the first sample has something to draw from.
		off := d.AddVertices(n)
		d.AddEdge(off, off+1)

		// Every edge contributes both endpoints, so a uniform draw from
		// endpoints is a degree-proportional draw over vertices.
		endpoints := make([]int, 0, 2*n*m)
		endpoints = append(endpoints, 0, 1)
		targets := make([]int, 0, m)
		chosen := make(map[int]struct{}, m)

		for v := 2; v < n; v++ {
			// Early vertices cannot pick more targets than exist.
			k := min(m, v)
			targets = targets[:0]
			clear(chosen)
			// Draw until k distinct targets; duplicates are redrawn.
			for len(targets) < k {
				t := endpoints[cfg.rng.Intn(len(endpoints))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			// Attach v and record both endpoints for later draws.
			for _, t := range targets {
				d.AddEdge(off+v, off+t)
				endpoints = append(endpoints, v, t)
			}
		}

		// Success: network fully grown.
		return nil
	}
}
