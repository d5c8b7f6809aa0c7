// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// variants_platonic.go — canonical vertex counts and shell edges of the five
// Platonic solids.
//
// Every edge list holds pairs U<V sorted lexicographically within each
// group. The solids are useful fingerprint fixtures: all are regular, and
// tetrahedron, octahedron and icosahedron are triangulated while cube and
// dodecahedron are triangle-free.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gfp/core"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  3-regular
	Cube                             // V=8,  E=12, 3-regular
	Octahedron                       // V=6,  E=12, 4-regular
	Dodecahedron                     // V=20, E=30, 3-regular
	Icosahedron                      // V=12, E=30, 5-regular
)

var platonicNames = map[PlatonicName]string{
	Tetrahedron:  "Tetrahedron",
	Cube:         "Cube",
	Octahedron:   "Octahedron",
	Dodecahedron: "Dodecahedron",
	Icosahedron:  "Icosahedron",
}

// String returns the solid's name.
func (p PlatonicName) String() string {
	if s, ok := platonicNames[p]; ok {
		return s
	}

	return fmt.Sprintf("PlatonicName(%d)", int(p))
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][]core.Edge{
	// K4.
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i—i+4.
	Cube: {
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 2, V: 3},
		{U: 0, V: 4}, {U: 1, V: 5}, {U: 2, V: 6}, {U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7}, {U: 5, V: 6}, {U: 6, V: 7},
	},

	// Poles 0 and 1, equator 2-4-3-5-2.
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
	// Top vertex i meets middle 10+2i, bottom vertex 5+i meets middle 11+2i.
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 6, V: 7}, {U: 7, V: 8}, {U: 8, V: 9},
		{U: 10, V: 11}, {U: 10, V: 19}, {U: 11, V: 12}, {U: 12, V: 13}, {U: 13, V: 14},
		{U: 14, V: 15}, {U: 15, V: 16}, {U: 16, V: 17}, {U: 17, V: 18}, {U: 18, V: 19},
		{U: 0, V: 10}, {U: 1, V: 12}, {U: 2, V: 14}, {U: 3, V: 16}, {U: 4, V: 18},
		{U: 5, V: 11}, {U: 6, V: 13}, {U: 7, V: 15}, {U: 8, V: 17}, {U: 9, V: 19},
	},

	// Pole 0, upper ring 1..5, lower ring 6..10, pole 11. Upper i meets
	// lower i+5 and the next lower vertex around the ring.
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5},
		{U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 2, V: 8}, {U: 3, V: 8},
		{U: 3, V: 9}, {U: 4, V: 9}, {U: 4, V: 10}, {U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 7, V: 8}, {U: 8, V: 9}, {U: 9, V: 10},
		{U: 6, V: 11}, {U: 7, V: 11}, {U: 8, V: 11}, {U: 9, V: 11}, {U: 10, V: 11},
	},
}
