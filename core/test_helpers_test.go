// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for gfp/core.

package core_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/gfp/core"
)

// MustGraph builds a graph or fails the test immediately.
func MustGraph(t testing.TB, n int, edges []core.Edge) *core.Graph {
	t.Helper()

	g, err := core.New(n, edges)
	if err != nil {
		t.Fatalf("core.New(%d, %v): unexpected error: %v", n, edges, err)
	}

	return g
}

// Collect materializes the multigraph neighbor sequence of v.
func Collect(g *core.Graph, v int) []int {
	return slices.Collect(g.Neighbors(v))
}
