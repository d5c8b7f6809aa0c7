// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_empty.go — implementation of Empty(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices); n = 0 is a no-op.
//   • Adds n isolated vertices, no edges.

package builder

import "fmt"

// Empty returns a Constructor that adds n isolated vertices.
func Empty(n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Zero vertices is a valid (empty) graph; only negatives are rejected.
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		// Isolated vertices only, no edges.
		d.AddVertices(n)

		return nil
	}
}
