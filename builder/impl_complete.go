// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every unordered pair i<j in lexicographic order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Validate parameter domain early.
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		// Reserve n fresh ids after anything already in the draft.
		off := d.AddVertices(n)
		// Emit each unordered pair once, i<j, in lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.AddEdge(off+i, off+j)
			}
		}

		// Success: K_n fully constructed.
		return nil
	}
}
