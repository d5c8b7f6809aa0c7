// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		// Reserve n fresh ids after anything already in the draft.
		off := d.AddVertices(n)
		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			d.AddEdge(off+i, off+(i+1)%n)
		}

		// Success: cycle fully constructed.
		return nil
	}
}
