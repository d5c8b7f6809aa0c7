// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first vertex of the block is the center; leaves follow in order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Validate parameter domain early.
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		// First reserved id is the centre; the rest are leaves.
		center := d.AddVertices(n)
		for leaf := center + 1; leaf < center+n; leaf++ {
			d.AddEdge(center, leaf)
		}

		// Success: star fully constructed.
		return nil
	}
}
