// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus one hub.
//   • The rim comes first, the hub is the last vertex of the block.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		// Build the rim as C_{n-1} through the Cycle constructor.
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		// Hub is appended after the rim and joined to each rim vertex.
		hub := d.AddVertices(1)
		for rim := hub - (n - 1); rim < hub; rim++ {
			d.AddEdge(hub, rim)
		}

		// Success: wheel fully constructed.
		return nil
	}
}
