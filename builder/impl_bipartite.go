// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • The left side occupies the first n1 vertices of the block, the right
//     side the next n2. Edges are emitted left-major.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import "fmt"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Both sides must be non-empty.
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		// Left part takes the first n1 ids, right part the next n2.
		left := d.AddVertices(n1 + n2)
		right := left + n1
		// Join every left vertex to every right vertex, row by row.
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.AddEdge(left+i, right+j)
			}
		}

		// Success: K_{n1,n2} fully constructed.
		return nil
	}
}
