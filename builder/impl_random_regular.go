// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Simple d-regular graph via stub matching with bounded retries.
//   • Each attempt shuffles the n·d stubs and pairs them consecutively; a
//     pairing with a loop or a repeated pair is rejected before anything is
//     written to the draft.
//
// Contract:
//   • n ≥ 1; 0 ≤ degree < n; n·degree even (else ErrTooFewVertices).
//   • cfg.rng required (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity: O(n·d) time and space per attempt.

package builder

import "fmt"

// RandomRegular returns a Constructor that samples a simple degree-regular graph.
func RandomRegular(n, degree int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// Reject impossible (n, degree) pairs before any work.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomRegular, n, ErrTooFewVertices)
		}
		if degree < 0 || degree >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, degree, ErrTooFewVertices)
		}
		if (n*degree)%2 != 0 {
			return fmt.Errorf("%s: n*degree must be even (n=%d, degree=%d): %w",
				methodRandomRegular, n, degree, ErrTooFewVertices)
		}
		// Shuffling needs a seeded source.
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// Each vertex contributes degree stubs.
		stubs := make([]int, 0, n*degree)
		for v := 0; v < n; v++ {
			for k := 0; k < degree; k++ {
				stubs = append(stubs, v)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			// Shuffle and pair consecutive stubs; retry on a loop or repeat.
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			// Commit only a successful pairing so failures leave the draft untouched.
			off := d.AddVertices(n)
			for i := 0; i < len(stubs); i += 2 {
				d.AddEdge(off+stubs[i], off+stubs[i+1])
			}

			return nil
		}

		// All attempts exhausted.
		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form no loop and no
// repeated edge.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
