// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
//     (else ErrUnknownSolid).
//   • Shell vertices come first in the block; with withCenter a hub follows
//     and is joined to every shell vertex in ascending order.
//   • Shell edges are emitted in the pre-sorted order of variants_platonic.go.
//
// Complexity: O(V+E) for the chosen solid (V ≤ 20, E ≤ 30).

package builder

import "fmt"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(d *Draft, _ builderConfig) error {
		// Resolve the solid; an unknown name is a caller error.
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: %v: %w", methodPlatonicSolid, name, ErrUnknownSolid)
		}

		// Copy the canonical shell, shifted by the draft offset.
		off := d.AddVertices(n)
		for _, e := range platonicEdgeSets[name] {
			d.AddEdge(off+e.U, off+e.V)
		}

		// Optional hub joined to every shell vertex.
		if withCenter {
			hub := d.AddVertices(1)
			for v := off; v < hub; v++ {
				d.AddEdge(hub, v)
			}
		}

		// Success: solid fully constructed.
		return nil
	}
}
