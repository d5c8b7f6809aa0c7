// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_random_sparse.go — implementation of RandomSparse(n, p) constructor.
//
// Canonical model: Erdős–Rényi G(n, p). Every unordered pair {i,j}, i<j, is
// an edge independently with probability p. No loops, no parallel edges.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and draws nothing.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: pairs are visited i asc, j asc; one draw per pair.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// Validate n and p before reserving ids.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// p==0 and p==1 are deterministic and need no rng.
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// One Bernoulli(p) trial per unordered pair, i<j, in a fixed order.
		off := d.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
					// Never connect.
				case p == 1:
					d.AddEdge(off+i, off+j)
				case cfg.rng.Float64() < p:
					d.AddEdge(off+i, off+j)
				}
			}
		}

		// Success: G(n,p) sample constructed.
		return nil
	}
}
