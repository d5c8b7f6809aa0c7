// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// constants.go — method tags and parameter minima shared by constructors.

package builder

// Method tags prefix constructor errors.
const (
	methodEmpty             = "Empty"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
	methodRandomRegular     = "RandomRegular"
	methodPlatonicSolid     = "PlatonicSolid"
	methodPriceNetwork      = "PriceNetwork"
)

// Minimum sizes. Below these a topology is undefined or degenerates into
// another constructor's output.
const (
	// MinPathNodes: a path needs at least one edge.
	MinPathNodes = 2
	// MinCycleNodes: a ring without loops or parallel edges needs 3 vertices.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single vertex.
	MinCompleteNodes = 1
	// MinPartitionSize: each side of K_{n1,n2} is non-empty.
	MinPartitionSize = 1
	// MinGridDim: a 1×1 grid is a single vertex.
	MinGridDim = 1
	// MinPriceNodes: the seed edge needs two vertices.
	MinPriceNodes = 2
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles. The chance that a
// uniform pairing is simple is about exp(-(d²-1)/4), so small d needs few tries.
const maxStubMatchingAttempts = 100
