// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i—(i+1) for i=0..n-2, relative to the block offset.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Validate parameter domain early.
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		// Reserve n fresh ids after anything already in the draft.
		off := d.AddVertices(n)
		// Link consecutive vertices; no wrap-around edge.
		for i := 0; i+1 < n; i++ {
			d.AddEdge(off+i, off+i+1)
		}

		// Success: path fully constructed.
		return nil
	}
}
