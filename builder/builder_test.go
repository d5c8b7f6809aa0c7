// SPDX-License-Identifier: MIT
// Package: gfp/builder
//
// builder_test.go — functional and error tests for every Constructor.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gfp/builder"
	"github.com/katalvlaran/gfp/core"
)

// degrees returns the multigraph degree of every vertex.
func degrees(g *core.Graph) []int {
	out := make([]int, g.VertexCount())
	for v := range out {
		out[v] = g.Degree(v)
	}

	return out
}

// triangleCount counts triangles by brute force over vertex triples.
func triangleCount(g *core.Graph) int {
	n, t := g.VertexCount(), 0
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !g.HasEdge(a, b) {
				continue
			}
			for c := b + 1; c < n; c++ {
				if g.HasEdge(a, c) && g.HasEdge(b, c) {
					t++
				}
			}
		}
	}

	return t
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{name: "Empty(3)", ctor: builder.Empty(3), wantV: 3, wantE: 0},
		{name: "Empty(0)", ctor: builder.Empty(0), wantV: 0, wantE: 0},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					require.True(t, g.HasEdge(i, i+1))
				}
				require.Equal(t, []int{1, 2, 2, 1}, degrees(g))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					require.True(t, g.HasEdge(i, (i+1)%5))
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{4, 1, 1, 1, 1}, degrees(g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 4, g.Degree(4))
				require.Equal(t, 4, triangleCount(g))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 10, triangleCount(g))
			},
		},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []int{3, 3, 2, 2, 2}, degrees(g))
				require.False(t, g.HasEdge(0, 1))
				require.Zero(t, triangleCount(g))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(0, 1))
				require.True(t, g.HasEdge(0, 3))
				require.False(t, g.HasEdge(2, 3))
			},
		},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron, false), wantV: 4, wantE: 6},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube, false), wantV: 8, wantE: 12},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron, false), wantV: 6, wantE: 12},
		{name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron, false), wantV: 20, wantE: 30},
		{name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron, false), wantV: 12, wantE: 30},
		{
			name: "Cube+center", ctor: builder.PlatonicSolid(builder.Cube, true), wantV: 9, wantE: 20,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, 8, g.Degree(8))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestPlatonicSolids_Regular(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      builder.PlatonicName
		degree    int
		triangles int
	}{
		{builder.Tetrahedron, 3, 4},
		{builder.Cube, 3, 0},
		{builder.Octahedron, 4, 8},
		{builder.Dodecahedron, 3, 0},
		{builder.Icosahedron, 5, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			g, err := builder.Build(builder.PlatonicSolid(tc.name, false))
			require.NoError(t, err)
			for v := 0; v < g.VertexCount(); v++ {
				require.Equal(t, tc.degree, g.SimpleDegree(v), "vertex %d", v)
			}
			require.Equal(t, tc.triangles, triangleCount(g))
		})
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(builder.Cycle(3), builder.Path(2), builder.Empty(1))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(2, 3))
	require.Zero(t, g.Degree(5))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Empty(-1)", nil, builder.Empty(-1), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,2)", nil, builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"PlatonicSolid(99)", nil, builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrUnknownSolid},
		{"RandomSparse(0)", seeded, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", seeded, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(p<0)", seeded, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(odd)", seeded, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(d>=n)", seeded, builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", nil, builder.RandomRegular(6, 2), builder.ErrNeedRandSource},
		{"PriceNetwork(1,1)", seeded, builder.PriceNetwork(1, 1), builder.ErrTooFewVertices},
		{"PriceNetwork(m=0)", seeded, builder.PriceNetwork(10, 0), builder.ErrTooFewVertices},
		{"PriceNetwork(no rng)", nil, builder.PriceNetwork(10, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.bopts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}
